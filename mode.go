package md2slides

import (
	"fmt"

	"github.com/alnah/go-md2slides/internal/deck"
)

// Mode selects the presentation template and stylesheet.
type Mode string

// Supported modes.
const (
	// ModeSimple renders prev/next buttons and a crossfade transition only.
	ModeSimple Mode = "simple"

	// ModeComplex adds a progress bar, slide counter, fullscreen toggle,
	// keyboard navigation and a control hint.
	ModeComplex Mode = "complex"
)

// DefaultMode is used when Input.Mode is empty.
const DefaultMode = ModeSimple

// Modes returns every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeSimple, ModeComplex}
}

// ParseMode converts s to a Mode. Matching is exact.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate returns ErrInvalidMode for anything but a supported mode.
func (m Mode) Validate() error {
	switch m {
	case ModeSimple, ModeComplex:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidMode, string(m), ModeSimple, ModeComplex)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// styleName is the stylesheet asset for the mode.
func (m Mode) styleName() string {
	return string(m)
}

// features lists the optional chrome a mode renders.
func (m Mode) features() deck.Features {
	switch m {
	case ModeComplex:
		return deck.Features{
			ProgressBar: true,
			Counter:     true,
			Fullscreen:  true,
			Hint:        true,
			Keyboard:    true,
		}
	case ModeSimple:
		return deck.Features{}
	default:
		panic(fmt.Sprintf("md2slides: unhandled mode %q", string(m)))
	}
}
