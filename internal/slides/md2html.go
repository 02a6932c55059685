package slides

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates Goldmark failed to render a segment.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
// Dark to match both built-in stylesheets.
const DefaultHighlightStyle = "monokai"

// HTMLConverter abstracts Markdown to HTML conversion of one slide.
type HTMLConverter interface {
	ToHTML(ctx context.Context, segment string) (string, error)
}

// Converter renders slide segments with Goldmark using an extended-syntax
// profile: tables, definition lists, footnotes, fenced code with
// highlighting, strikethrough, autolinks and attribute lists.
type Converter struct {
	md goldmark.Markdown
}

// ConverterOption configures a Converter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	highlightStyle string
}

// WithHighlightStyle selects the chroma style for fenced code blocks.
// An empty name keeps DefaultHighlightStyle.
func WithHighlightStyle(name string) ConverterOption {
	return func(c *converterConfig) {
		if name != "" {
			c.highlightStyle = name
		}
	}
}

// NewConverter creates a Converter.
func NewConverter(opts ...ConverterOption) *Converter {
	cfg := converterConfig{highlightStyle: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks, task lists
			extension.DefinitionList,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.TabWidth(4),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(), // {#id .class} after headings
		),
		goldmark.WithRendererOptions(
			// Raw HTML in slides is passed through.
			html.WithUnsafe(),
		),
	)
	return &Converter{md: md}
}

// ToHTML converts one slide segment to an HTML fragment.
// Goldmark has no context support, so cancellation is only observed
// before conversion starts.
func (c *Converter) ToHTML(ctx context.Context, segment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(segment), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

var _ HTMLConverter = (*Converter)(nil)
