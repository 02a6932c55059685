package md2slides

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "talk.md")
	if err := os.WriteFile(valid, []byte("# Héllo\n---\n# Wörld"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "binary.md")
	if err := os.WriteFile(invalid, []byte{0xff, 0xfe, 0x00, 'a'}, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"valid utf-8", valid, "# Héllo\n---\n# Wörld", false},
		{"invalid utf-8", invalid, "", true},
		{"missing file", filepath.Join(dir, "missing.md"), "", true},
		{"directory", dir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadSource(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrReadSource) {
					t.Errorf("ReadSource() error = %v, want ErrReadSource", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadSource() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadSource() = %q, want %q", got, tt.want)
			}
		})
	}
}
