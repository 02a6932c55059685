// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions used for generated output.
const (
	DirPerm  os.FileMode = 0o750
	FilePerm os.FileMode = 0o644
)

// ErrPrefixInvalid indicates a temp directory prefix that would escape the
// system temp directory.
var ErrPrefixInvalid = errors.New("temp prefix contains path separator or null byte")

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	// #nosec G306 -- generated presentation files are meant to be readable
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MakeTempDir creates a fresh directory under the system temp directory.
// The returned cleanup removes it with everything inside.
func MakeTempDir(prefix string) (dir string, cleanup func() error, err error) {
	if strings.ContainsAny(prefix, "/\\\x00") {
		return "", nil, ErrPrefixInvalid
	}
	dir, err = os.MkdirTemp("", prefix+"*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp directory: %w", err)
	}
	return dir, func() error { return os.RemoveAll(dir) }, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "talk" -> false (name)
//   - "./talk.yaml" -> true (relative path)
//   - "/etc/md2slides/talk.yaml" -> true (absolute)
//   - "C:\decks\talk.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// FileURL returns a file:// URL for path, made absolute first.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	return "file://" + abs, nil
}
