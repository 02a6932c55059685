package cli

import (
	"errors"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/hints"
)

// Describe returns the error message followed by an actionable hint when
// one applies.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return err.Error() + hintFor(err)
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, md2slides.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, md2slides.ErrPageLoad):
		return hints.ForPageLoad()
	case errors.Is(err, md2slides.ErrInvalidMode):
		return hints.ForMode(modeNames())
	case errors.Is(err, md2slides.ErrHTMLNotFound):
		return hints.ForMissingHTML()
	case errors.Is(err, md2slides.ErrNoSlides):
		return hints.ForNoSlides()
	case errors.Is(err, md2slides.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	default:
		return ""
	}
}

func modeNames() []string {
	modes := md2slides.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}
