package deck

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/alnah/go-md2slides/internal/assets"
)

// ErrTemplateRender indicates the deck template could not be parsed or
// executed.
var ErrTemplateRender = errors.New("template rendering failed")

// DefaultStylesheet is the stylesheet href written into the document.
const DefaultStylesheet = "styles.css"

// Features toggles the optional chrome of a deck.
type Features struct {
	ProgressBar bool
	Counter     bool
	Fullscreen  bool
	Hint        bool
	Keyboard    bool
}

// Slide is one rendered slide container.
type Slide struct {
	Index  int
	Active bool
	HTML   string
}

// Document is the data passed to the deck template.
type Document struct {
	Title      string
	Stylesheet string
	Slides     []Slide
	Features   Features
}

// Total returns the number of slides.
func (d *Document) Total() int {
	return len(d.Slides)
}

// NewDocument builds a Document from ordered slide fragments. Indices are
// assigned 0..n-1 and only the first slide is active.
func NewDocument(title string, fragments []string, features Features) *Document {
	slides := make([]Slide, len(fragments))
	for i, frag := range fragments {
		slides[i] = Slide{Index: i, Active: i == 0, HTML: frag}
	}
	return &Document{
		Title:      title,
		Stylesheet: DefaultStylesheet,
		Slides:     slides,
		Features:   features,
	}
}

// Renderer executes the deck template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer loads and parses the deck template from loader.
func NewRenderer(loader assets.AssetLoader) (*Renderer, error) {
	content, err := loader.LoadTemplate(assets.DeckTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading deck template: %w", err)
	}
	return NewRendererFromString(content)
}

// NewRendererFromString parses a deck template from source text.
func NewRendererFromString(content string) (*Renderer, error) {
	tmpl, err := template.New(assets.DeckTemplateName).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template with doc.
func (r *Renderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrTemplateRender)
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.Bytes(), nil
}
