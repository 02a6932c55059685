package md2slides

import "time"

// Input holds the parameters of one assembly.
type Input struct {
	// Markdown is the source document. Slides are separated by "---".
	Markdown string

	// Title is written verbatim into the document <title>.
	Title string

	// Mode selects the template and stylesheet. Empty means DefaultMode.
	Mode Mode

	// SourceDir is the directory of the Markdown file. Used to resolve
	// relative image and link paths when WithAbsolutePaths is enabled.
	SourceDir string
}

// Bundle is an assembled presentation ready to be written.
type Bundle struct {
	HTML   []byte
	CSS    []byte
	Mode   Mode
	Slides int
}

// WriteResult reports what WriteBundle put on disk.
type WriteResult struct {
	Dir    string   // absolute output directory
	Files  []string // file names relative to Dir
	Mode   Mode
	Slides int
}

// ExportResult reports a finished PDF export.
type ExportResult struct {
	Output string // absolute path of the merged PDF
	Slides int
	Pages  int

	// LeftoverDir is set when the intermediate page directory could not be
	// removed after a successful merge.
	LeftoverDir string
}

// Default values.
const (
	DefaultTitle          = "Presentation"
	DefaultOutputDir      = "presentation"
	DefaultHTMLPath       = "index.html"
	DefaultPDFPath        = "presentation.pdf"
	DefaultViewportWidth  = 1400
	DefaultViewportHeight = 900
	defaultTimeout        = 30 * time.Second
	defaultSettleDelay    = 200 * time.Millisecond
	pageFileFormat        = "slide_%02d.pdf"
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithAssetPath sets a directory whose templates/ and styles/ override the
// built-in assets. Files missing there fall back to the embedded copies.
func WithAssetPath(dir string) Option {
	return func(a *Assembler) {
		a.cfg.assetPath = dir
	}
}

// WithHighlightStyle sets the chroma style used for fenced code blocks.
func WithHighlightStyle(name string) Option {
	return func(a *Assembler) {
		a.cfg.highlightStyle = name
	}
}

// WithAbsolutePaths rewrites relative image and link paths to file:// URLs
// resolved against Input.SourceDir.
func WithAbsolutePaths(enabled bool) Option {
	return func(a *Assembler) {
		a.cfg.absolutePaths = enabled
	}
}

// ExportOption configures an Exporter.
type ExportOption func(*Exporter)

// WithTimeout bounds browser launch and page load.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) ExportOption {
	if d <= 0 {
		panic("md2slides: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithViewport sets the browser viewport in CSS pixels.
// Panics if either dimension is not positive.
func WithViewport(width, height int) ExportOption {
	if width <= 0 || height <= 0 {
		panic("md2slides: WithViewport dimensions must be positive")
	}
	return func(e *Exporter) {
		e.cfg.viewportWidth = width
		e.cfg.viewportHeight = height
	}
}

// WithSettleDelay sets the pause between activating a slide and printing
// it, leaving room for CSS transitions. Zero disables the pause.
// Panics if d < 0.
func WithSettleDelay(d time.Duration) ExportOption {
	if d < 0 {
		panic("md2slides: WithSettleDelay duration must not be negative")
	}
	return func(e *Exporter) {
		e.cfg.settleDelay = d
	}
}
