package md2slides

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disablePDFCPUConfigDir sync.Once

// pdfcpuMerger implements pdfMerger using pdfcpu.
type pdfcpuMerger struct {
	conf *model.Configuration
}

func newPDFCPUMerger() *pdfcpuMerger {
	// pdfcpu otherwise writes a config directory under the user's home.
	disablePDFCPUConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &pdfcpuMerger{conf: conf}
}

// Merge concatenates inputs into output and reports the page count.
func (m *pdfcpuMerger) Merge(ctx context.Context, inputs []string, output string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(inputs) == 0 {
		return 0, ErrNoSlides
	}

	if err := api.MergeCreateFile(inputs, output, false, m.conf); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMerge, err)
	}

	pages, err := api.PageCountFile(output)
	if err != nil {
		return 0, fmt.Errorf("%w: counting pages: %v", ErrMerge, err)
	}
	return pages, nil
}
