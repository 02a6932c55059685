package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slides2pdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print each slide of ./index.html to an A4 landscape page and merge")
	fmt.Fprintln(w, "them into ./presentation.pdf. Requires Chrome or Chromium.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-slide progress")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config (export section):")
	fmt.Fprintln(w, "  input, output             HTML source and PDF destination")
	fmt.Fprintln(w, "  timeout                   Browser launch and page load limit (default: 30s)")
	fmt.Fprintln(w, "  settleDelay               Pause before printing each slide (default: 200ms)")
	fmt.Fprintln(w, "  viewport.width/height     Browser viewport (default: 1400x900)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Path to a Chrome/Chromium binary")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
}
