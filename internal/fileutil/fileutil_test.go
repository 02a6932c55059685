package fileutil_test

// Notes:
// - Permission failures are triggered with a read-only parent directory and
//   skipped when running as root, where the mode bits are not enforced.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-md2slides/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestEnsureDir - Directory creation
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested parents", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "b", "c")
		if err := fileutil.EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory not created: %v", err)
		}
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.EnsureDir(dir); err != nil {
			t.Errorf("EnsureDir() error = %v", err)
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.EnsureDir(filepath.Join(file, "sub")); err == nil {
			t.Error("EnsureDir() expected error when a parent is a file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteFile - Overwrite semantics
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	if err := fileutil.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := fileutil.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestWriteFile_ReadOnlyDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced")
	}

	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	if err := fileutil.WriteFile(filepath.Join(dir, "f"), []byte("x")); err == nil {
		t.Error("WriteFile() expected error in read-only directory")
	}
}

// ---------------------------------------------------------------------------
// TestMakeTempDir - Temp directory lifecycle
// ---------------------------------------------------------------------------

func TestMakeTempDir(t *testing.T) {
	t.Parallel()

	dir, cleanup, err := fileutil.MakeTempDir("md2slides-test-")
	if err != nil {
		t.Fatalf("MakeTempDir() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(dir), "md2slides-test-") {
		t.Errorf("dir %q missing prefix", dir)
	}
	if err := os.WriteFile(filepath.Join(dir, "page.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup() error = %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after cleanup")
	}
}

func TestMakeTempDir_InvalidPrefix(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"../x", `a\b`, "a\x00b"} {
		_, _, err := fileutil.MakeTempDir(prefix)
		if !errors.Is(err, fileutil.ErrPrefixInvalid) {
			t.Errorf("MakeTempDir(%q) error = %v, want ErrPrefixInvalid", prefix, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing.md"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"talk", false},
		{"my-talk", false},
		{"./talk.yaml", true},
		{"/abs/talk.yaml", true},
		{`C:\decks\talk.yaml`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileURL
// ---------------------------------------------------------------------------

func TestFileURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := fileutil.FileURL(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("FileURL() error = %v", err)
	}
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("FileURL() = %q, want file:/// prefix", got)
	}
	if !strings.HasSuffix(got, "/index.html") {
		t.Errorf("FileURL() = %q, want /index.html suffix", got)
	}
}
