// Package noopcodec provides a no-op codec (no compression).
package noopcodec

import (
	"io"

	"github.com/discochess/patzer/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements no compression.
type Codec struct{}

// New returns a new no-op codec.
func New() *Codec {
	return &Codec{}
}

// Reader returns r wrapped as a ReadCloser (no decompression). Closing the
// returned reader does not close r; the caller owns the underlying reader.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// Writer returns w wrapped as a WriteCloser (no compression). As with the
// compressing codecs, Close finalizes codec state only and never closes the
// underlying writer.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return &nopWriteCloser{w}, nil
}

// Extension returns empty string.
func (c *Codec) Extension() string {
	return ""
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
