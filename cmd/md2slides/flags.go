package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2slides/internal/cli"
)

// commonFlags holds flags shared with slides2pdf.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
}

// assembleFlags holds every md2slides flag.
type assembleFlags struct {
	common        commonFlags
	input         string
	mode          string
	output        string
	title         string
	assetPath     string
	absolutePaths bool
	watch         bool

	// set records flags given explicitly on the command line, so config
	// values only fill in what the user left out.
	set map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
}

func newFlagSet(f *assembleFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2slides", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.input, "input", "i", "", "markdown source file (required)")
	fs.StringVarP(&f.mode, "mode", "m", "", "presentation mode: simple, complex")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.title, "title", "t", "", "document title")
	fs.StringVar(&f.assetPath, "asset-path", "", "override directory for templates/ and styles/")
	fs.BoolVar(&f.absolutePaths, "absolute-paths", false, "rewrite relative image and link paths to file:// URLs")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild whenever the input changes")
	return fs
}

// parseFlags parses args (program name first). flag.ErrHelp is returned
// unwrapped for -h/--help; every other failure wraps cli.ErrUsage.
func parseFlags(args []string) (*assembleFlags, error) {
	f := &assembleFlags{set: make(map[string]bool)}
	fs := newFlagSet(f)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q (use --input)", cli.ErrUsage, fs.Arg(0))
	}

	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = true
	})
	return f, nil
}

// wantsVerbose reports whether --verbose was passed, ignoring parse errors.
// Used before runMain to decide how loud startup logging should be.
func wantsVerbose(args []string) bool {
	f, err := parseFlags(args)
	return err == nil && f.common.verbose
}
