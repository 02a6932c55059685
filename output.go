package md2slides

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-md2slides/internal/fileutil"
)

// Output bundle file names.
const (
	IndexFileName  = "index.html"
	StylesFileName = "styles.css"
)

// WriteBundle writes index.html and styles.css into dir, creating it and
// any parents. Existing files are overwritten.
func WriteBundle(dir string, b *Bundle) (*WriteResult, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil bundle", ErrWriteOutput)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := fileutil.EnsureDir(absDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{IndexFileName, b.HTML},
		{StylesFileName, b.CSS},
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if err := fileutil.WriteFile(filepath.Join(absDir, f.name), f.data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		names = append(names, f.name)
	}

	return &WriteResult{
		Dir:    absDir,
		Files:  names,
		Mode:   b.Mode,
		Slides: b.Slides,
	}, nil
}
