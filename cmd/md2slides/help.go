package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2slides -i <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a Markdown file on \"---\" lines and build a browser slide deck")
	fmt.Fprintln(w, "(index.html + styles.css).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Markdown source file (required)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: ./presentation)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "  -m, --mode <s>            Mode: simple, complex (default: simple)")
	fmt.Fprintln(w, "  -t, --title <s>           Document title (default: Presentation)")
	fmt.Fprintln(w, "      --asset-path <dir>    Override templates/ and styles/ directory")
	fmt.Fprintln(w, "      --absolute-paths      Rewrite relative image/link paths to file:// URLs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Workflow:")
	fmt.Fprintln(w, "  -w, --watch               Rebuild whenever the input changes (Ctrl-C to stop)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2slides -i talk.md")
	fmt.Fprintln(w, "  md2slides -i talk.md -m complex -t \"Quarterly Review\" -o out")
	fmt.Fprintln(w, "  md2slides -i talk.md --watch")
}
