// Package deck renders the presentation document from converted slide
// fragments.
//
// A single template serves every mode. Optional chrome (progress bar,
// counter, fullscreen control, hint legend, keyboard handler) is gated by
// Features so that the document for one mode never carries markup for
// another.
//
// Titles and slide fragments are inserted verbatim; the template is executed
// with text/template rather than html/template.
package deck
