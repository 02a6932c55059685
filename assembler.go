package md2slides

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2slides/internal/assets"
	"github.com/alnah/go-md2slides/internal/deck"
	"github.com/alnah/go-md2slides/internal/slides"
)

var _ slides.HTMLConverter = (*slides.Converter)(nil)

// Assembler turns a Markdown document into a presentation bundle.
// Create with NewAssembler and reuse it across documents.
type Assembler struct {
	cfg       assemblerConfig
	loader    assets.AssetLoader
	converter slides.HTMLConverter
	renderer  *deck.Renderer
}

type assemblerConfig struct {
	assetPath      string
	highlightStyle string
	absolutePaths  bool
}

// NewAssembler creates an Assembler. Returns an error if the asset path is
// unusable or the deck template does not parse.
func NewAssembler(opts ...Option) (*Assembler, error) {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}

	resolver, err := assets.NewAssetResolver(a.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	a.loader = resolver

	if a.converter == nil {
		a.converter = slides.NewConverter(slides.WithHighlightStyle(a.cfg.highlightStyle))
	}

	a.renderer, err = deck.NewRenderer(a.loader)
	if err != nil {
		return nil, fmt.Errorf("initializing deck renderer: %w", err)
	}
	return a, nil
}

// Assemble splits input.Markdown into slides, converts each one and renders
// the document and stylesheet for input.Mode. A document without any
// non-blank segment yields a bundle with zero slides.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (a *Assembler) Assemble(ctx context.Context, input Input) (bundle *Bundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	mode := input.Mode
	if mode == "" {
		mode = DefaultMode
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	segments := slides.Split(slides.Normalize(input.Markdown))
	fragments := make([]string, 0, len(segments))
	for i, seg := range segments {
		frag, err := a.converter.ToHTML(ctx, seg)
		if err != nil {
			return nil, fmt.Errorf("converting slide %d: %w", i, err)
		}
		if a.cfg.absolutePaths && input.SourceDir != "" {
			frag, err = slides.RewriteRelativePaths(frag, input.SourceDir)
			if err != nil {
				return nil, fmt.Errorf("rewriting paths in slide %d: %w", i, err)
			}
		}
		fragments = append(fragments, frag)
	}

	htmlDoc, err := a.renderer.Render(deck.NewDocument(input.Title, fragments, mode.features()))
	if err != nil {
		return nil, err
	}

	css, err := a.loader.LoadStyle(mode.styleName())
	if err != nil {
		return nil, fmt.Errorf("loading %s stylesheet: %w", mode, err)
	}

	return &Bundle{
		HTML:   htmlDoc,
		CSS:    []byte(css),
		Mode:   mode,
		Slides: len(fragments),
	}, nil
}
