package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
)

// ---------------------------------------------------------------------------
// TestDescribe - Error message plus hint
// ---------------------------------------------------------------------------

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantParts []string
		wantExact string
	}{
		{
			name:      "nil error is empty",
			err:       nil,
			wantExact: "",
		},
		{
			name:      "plain error has no hint",
			err:       errors.New("boom"),
			wantExact: "boom",
		},
		{
			name:      "invalid mode lists modes",
			err:       fmt.Errorf("%w: %q", md2slides.ErrInvalidMode, "fancy"),
			wantParts: []string{"fancy", "simple", "complex"},
		},
		{
			name:      "page load suggests timeout",
			err:       fmt.Errorf("%w: deadline exceeded", md2slides.ErrPageLoad),
			wantParts: []string{"deadline exceeded", "export.timeout"},
		},
		{
			name:      "missing html points at md2slides",
			err:       md2slides.ErrHTMLNotFound,
			wantParts: []string{md2slides.ErrHTMLNotFound.Error(), "md2slides"},
		},
		{
			name:      "config not found keeps message",
			err:       fmt.Errorf("%w: tried x.yaml", config.ErrConfigNotFound),
			wantParts: []string{"tried x.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Describe(tt.err)
			if tt.wantParts == nil {
				if got != tt.wantExact {
					t.Errorf("Describe() = %q, want %q", got, tt.wantExact)
				}
				return
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Describe() = %q, missing %q", got, part)
				}
			}
		})
	}
}

func TestDescribe_HintIsAppended(t *testing.T) {
	t.Parallel()

	err := md2slides.ErrNoSlides
	got := Describe(err)
	if len(got) <= len(err.Error()) {
		t.Errorf("Describe() = %q, expected a hint after the message", got)
	}
	if !strings.HasPrefix(got, err.Error()) {
		t.Errorf("Describe() = %q, should start with the error message", got)
	}
}
