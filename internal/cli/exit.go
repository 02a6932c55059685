package cli

import (
	"errors"
	"os"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/watch"
)

// Exit codes shared by both commands.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, mode, or config
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser, rendering, or merge errors
)

// ErrUsage marks command-line mistakes such as unknown flags or a missing
// required flag.
var ErrUsage = errors.New("usage error")

// ExitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, md2slides.ErrBrowserConnect) ||
		errors.Is(err, md2slides.ErrPageCreate) ||
		errors.Is(err, md2slides.ErrPageLoad) ||
		errors.Is(err, md2slides.ErrSlideActivate) ||
		errors.Is(err, md2slides.ErrPDFGeneration) ||
		errors.Is(err, md2slides.ErrMerge) ||
		errors.Is(err, md2slides.ErrNoSlides) {
		return ExitBrowser
	}

	if errors.Is(err, md2slides.ErrReadSource) ||
		errors.Is(err, md2slides.ErrWriteOutput) ||
		errors.Is(err, md2slides.ErrHTMLNotFound) ||
		errors.Is(err, watch.ErrNotAFile) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, md2slides.ErrInvalidMode) ||
		errors.Is(err, md2slides.ErrInvalidAssetPath) ||
		errors.Is(err, md2slides.ErrStyleNotFound) ||
		errors.Is(err, md2slides.ErrTemplateNotFound) ||
		errors.Is(err, md2slides.ErrTemplateRender) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	return ExitGeneral
}
