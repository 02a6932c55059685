package md2slides

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadSource reads a Markdown file and checks it is valid UTF-8.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrReadSource, path)
	}
	return string(data), nil
}
