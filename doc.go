// Package md2slides turns Markdown documents into browser slide decks and
// exports those decks to PDF using headless Chrome.
//
// # Quick Start
//
// Assemble a deck and write it to disk:
//
//	asm, err := md2slides.NewAssembler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bundle, err := asm.Assemble(ctx, md2slides.Input{
//	    Markdown: "# Hello\n\n---\n\n# World",
//	    Title:    "Demo",
//	    Mode:     md2slides.ModeComplex,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := md2slides.WriteBundle("presentation", bundle)
//
// Export the written deck to PDF:
//
//	exp := md2slides.NewExporter()
//	defer exp.Close()
//	out, err := exp.Export(ctx, "presentation/index.html", "presentation.pdf")
//
// # Slides
//
// The source is split on every literal occurrence of "---", wherever it
// appears, including inside code fences and table separators. Each segment is
// trimmed; blank segments are dropped. Segments are converted with Goldmark
// (GFM tables, strikethrough and autolinks, definition lists, footnotes,
// attribute lists, chroma-highlighted code). Raw HTML passes through.
//
// # Modes
//
// ModeSimple renders previous/next buttons and a crossfade. ModeComplex adds
// a progress bar, a "current / total" counter, a fullscreen toggle, keyboard
// navigation (arrows, PageUp/PageDown, Space, F) and a control hint.
//
// # Custom Assets
//
// WithAssetPath points at a directory that may override any of:
//
//	assets/
//	├── styles/
//	│   ├── simple.css
//	│   └── complex.css
//	└── templates/
//	    └── deck.html
//
// # PDF Export
//
// Exporter opens the document in a 1400x900 viewport, then for every slide
// activates it, hides the navigation chrome, waits for the transition and
// prints one landscape A4 page with no margins. The pages are merged with
// pdfcpu. Intermediate pages are deleted only after a successful merge.
//
// # Browser Requirements
//
// PDF export requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package md2slides
