package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2slides/internal/cli"
)

// commonFlags holds flags shared with md2slides.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-slide progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
}

// parseFlags parses args (program name first). flag.ErrHelp is returned
// unwrapped for -h/--help; every other failure wraps cli.ErrUsage.
func parseFlags(args []string) (*commonFlags, error) {
	f := &commonFlags{}
	fs := flag.NewFlagSet("slides2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	addCommonFlags(fs, f)

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
		return nil, fmt.Errorf("%w: unexpected argument %q (set export.input in a config file)", cli.ErrUsage, fs.Arg(0))
	}
	return f, nil
}

// wantsVerbose reports whether --verbose was passed, ignoring parse errors.
func wantsVerbose(args []string) bool {
	f, err := parseFlags(args)
	return err == nil && f.verbose
}
