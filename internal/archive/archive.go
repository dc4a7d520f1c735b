// Package archive writes self-play games to PGN files, compressed according
// to the file extension.
package archive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/discochess/patzer/internal/codec"
	"github.com/discochess/patzer/internal/codec/gzipcodec"
	"github.com/discochess/patzer/internal/codec/noopcodec"
	"github.com/discochess/patzer/internal/codec/zstdcodec"
)

// ForPath returns the codec matching the extension of path: ".zst" for zstd,
// ".gz" for gzip, anything else uncompressed.
func ForPath(path string) codec.Codec {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return zstdcodec.New()
	case strings.HasSuffix(path, ".gz"):
		return gzipcodec.New()
	default:
		return noopcodec.New()
	}
}

// WritePGN writes the given PGN games to path, separated by blank lines.
// Compression is chosen from the file extension.
func WritePGN(path string, games []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing archive: %w", cerr)
		}
	}()

	w, err := ForPath(path).Writer(f)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	for _, game := range games {
		if _, err := w.Write([]byte(game)); err != nil {
			w.Close()
			return fmt.Errorf("writing game: %w", err)
		}
		if _, err := w.Write([]byte("\n\n")); err != nil {
			w.Close()
			return fmt.Errorf("writing game: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("flushing archive: %w", err)
	}
	return nil
}

// ReadPGN reads a PGN archive written by WritePGN and returns its raw
// contents, decompressing according to the file extension.
func ReadPGN(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	r, err := ForPath(path).Reader(f)
	if err != nil {
		return nil, fmt.Errorf("creating reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	return data, nil
}
