package md2slides

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2slides/internal/fileutil"
)

// pageRenderer drives a browser over a presentation document.
type pageRenderer interface {
	// Open loads the document at url and returns its slide count.
	Open(ctx context.Context, url string) (int, error)

	// RenderSlide activates slide index, hides the navigation chrome and
	// prints the page to outPath.
	RenderSlide(ctx context.Context, index int, outPath string) error

	Close() error
}

// pdfMerger concatenates single-page PDFs.
type pdfMerger interface {
	// Merge writes inputs, in order, to output and returns its page count.
	Merge(ctx context.Context, inputs []string, output string) (int, error)
}

var (
	_ pageRenderer = (*rodRenderer)(nil)
	_ pdfMerger    = (*pdfcpuMerger)(nil)
)

// tempDirPrefix names the directory holding per-slide pages.
const tempDirPrefix = "md2slides-pages-"

// Exporter renders a presentation document to a merged PDF, one slide per
// page. Slides are rendered sequentially in a single browser page.
// Create with NewExporter and call Close when done.
type Exporter struct {
	cfg      exporterConfig
	renderer pageRenderer
	merger   pdfMerger
}

type exporterConfig struct {
	timeout        time.Duration
	settleDelay    time.Duration
	viewportWidth  int
	viewportHeight int
}

// NewExporter creates an Exporter. The browser is launched lazily on the
// first Export.
func NewExporter(opts ...ExportOption) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{
			timeout:        defaultTimeout,
			settleDelay:    defaultSettleDelay,
			viewportWidth:  DefaultViewportWidth,
			viewportHeight: DefaultViewportHeight,
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.renderer == nil {
		e.renderer = newRodRenderer(e.cfg)
	}
	if e.merger == nil {
		e.merger = newPDFCPUMerger()
	}
	return e
}

// Export renders every slide of the document at htmlPath and merges the
// pages into outputPath.
//
// Page files are written to a temporary directory that is removed only after
// a successful merge. On failure the directory is kept and named in the
// returned error.
func (e *Exporter) Export(ctx context.Context, htmlPath, outputPath string) (*ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fileutil.FileExists(htmlPath) {
		return nil, fmt.Errorf("%w: %s", ErrHTMLNotFound, htmlPath)
	}

	url, err := fileutil.FileURL(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLNotFound, err)
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	total, err := e.renderer.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSlides, htmlPath)
	}

	tmpDir, cleanup, err := fileutil.MakeTempDir(tempDirPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	pages := make([]string, 0, total)
	for i := range total {
		pagePath := filepath.Join(tmpDir, fmt.Sprintf(pageFileFormat, i))
		if err := e.renderer.RenderSlide(ctx, i, pagePath); err != nil {
			return nil, fmt.Errorf("slide %d (pages kept in %s): %w", i, tmpDir, err)
		}
		pages = append(pages, pagePath)
	}

	if err := fileutil.EnsureDir(filepath.Dir(absOutput)); err != nil {
		return nil, fmt.Errorf("%w: %v (pages kept in %s)", ErrWriteOutput, err, tmpDir)
	}

	pageCount, err := e.merger.Merge(ctx, pages, absOutput)
	if err != nil {
		return nil, fmt.Errorf("pages kept in %s: %w", tmpDir, err)
	}

	res := &ExportResult{
		Output: absOutput,
		Slides: total,
		Pages:  pageCount,
	}
	if err := cleanup(); err != nil {
		res.LeftoverDir = tmpDir
	}
	return res, nil
}

// Close releases browser resources.
func (e *Exporter) Close() error {
	if e.renderer != nil {
		return e.renderer.Close()
	}
	return nil
}
