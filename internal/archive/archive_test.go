package archive

import (
	"path/filepath"
	"strings"
	"testing"
)

const samplePGN = `[Event "?"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0`

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "games.pgn.zst", want: "zst"},
		{path: "games.pgn.gz", want: "gz"},
		{path: "games.pgn", want: ""},
		{path: "games", want: ""},
	}

	for _, tt := range tests {
		if got := ForPath(tt.path).Extension(); got != tt.want {
			t.Errorf("ForPath(%q).Extension() = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, ext := range []string{".pgn", ".pgn.gz", ".pgn.zst"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "games"+ext)

			if err := WritePGN(path, []string{samplePGN, samplePGN}); err != nil {
				t.Fatalf("WritePGN() error = %v", err)
			}

			data, err := ReadPGN(path)
			if err != nil {
				t.Fatalf("ReadPGN() error = %v", err)
			}

			if got := strings.Count(string(data), "[Event "); got != 2 {
				t.Errorf("archive contains %d games, want 2", got)
			}
		})
	}
}
