// Package slides turns a Markdown source into an ordered list of HTML
// fragments, one per slide.
//
// The stages are:
//   - line-ending normalization (Normalize)
//   - slide splitting on the literal "---" substring (Split)
//   - Markdown to HTML conversion of each segment via Goldmark (Converter)
//   - optional rewriting of relative image and link paths (RewriteRelativePaths)
//
// Splitting is a raw substring partition, not a Markdown-aware parse: a "---"
// inside a fenced code block, a table separator row or front matter also
// starts a new slide. Callers that need a different boundary rule must
// pre-process the source themselves.
package slides
