package md2slides

import (
	"errors"

	"github.com/alnah/go-md2slides/internal/assets"
	"github.com/alnah/go-md2slides/internal/deck"
	"github.com/alnah/go-md2slides/internal/slides"
)

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrReadSource   = errors.New("failed to read markdown source")
	ErrInvalidMode  = errors.New("invalid mode")
	ErrHTMLNotFound = errors.New("presentation HTML not found")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output")

	// Rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrSlideActivate  = errors.New("failed to activate slide")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Merge errors.
	ErrMerge    = errors.New("failed to merge PDF pages")
	ErrNoSlides = errors.New("presentation has no slides")

	// Conversion and templating errors, shared with the internal packages so
	// errors.Is works across the boundary.
	ErrHTMLConversion = slides.ErrHTMLConversion
	ErrTemplateRender = deck.ErrTemplateRender

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
