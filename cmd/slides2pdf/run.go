package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/cli"
	"github.com/alnah/go-md2slides/internal/config"
)

// exporter is the part of *md2slides.Exporter the command uses.
type exporter interface {
	Export(ctx context.Context, htmlPath, outputPath string) (*md2slides.ExportResult, error)
	Close() error
}

// exporterFactory builds an exporter from resolved options.
type exporterFactory func(opts ...md2slides.ExportOption) exporter

func newExporter(opts ...md2slides.ExportOption) exporter {
	return md2slides.NewExporter(opts...)
}

// exportSettings is the merged result of config over defaults.
type exportSettings struct {
	input  string
	output string
	opts   []md2slides.ExportOption
}

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *cli.Environment) int {
	return runWith(args, env, newExporter)
}

func runWith(args []string, env *cli.Environment, factory exporterFactory) int {
	f, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return cli.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		fmt.Fprintln(env.Stderr, "Run 'slides2pdf --help' for usage.")
		return cli.ExitUsage
	}

	if f.version {
		fmt.Fprintf(env.Stdout, "slides2pdf %s\n", Version)
		return cli.ExitSuccess
	}

	cli.SetVerbosity(env.Log, f.quiet, f.verbose)

	ctx, stop := cli.NotifyContext(context.Background())
	defer stop()

	if err := run(ctx, f, env, factory); err != nil {
		fmt.Fprintln(env.Stderr, "error:", cli.Describe(err))
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

func run(ctx context.Context, f *commonFlags, env *cli.Environment, factory exporterFactory) (err error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		cfg, err = config.LoadConfig(f.config)
		if err != nil {
			return err
		}
	}

	s, err := resolveExport(cfg.Export)
	if err != nil {
		return err
	}

	exp := factory(s.opts...)
	defer func() {
		if closeErr := exp.Close(); closeErr != nil {
			env.Log.WithError(closeErr).Warn("closing browser")
		}
	}()

	env.Log.WithField("input", s.input).Debug("exporting")
	start := env.Now()

	res, err := exp.Export(ctx, s.input, s.output)
	if err != nil {
		return err
	}

	env.Log.WithField("elapsed", env.Now().Sub(start)).Debug("export finished")
	if res.LeftoverDir != "" {
		env.Log.WithField("dir", res.LeftoverDir).Warn("could not remove intermediate pages")
	}

	fmt.Fprintf(env.Stdout, "Output: %s\n", res.Output)
	fmt.Fprintf(env.Stdout, "Slides: %d\n", res.Slides)
	fmt.Fprintf(env.Stdout, "Pages:  %d\n", res.Pages)
	return nil
}

// resolveExport applies the export config over built-in defaults.
// Zero values keep the exporter defaults.
func resolveExport(c config.ExportConfig) (*exportSettings, error) {
	s := &exportSettings{
		input:  md2slides.DefaultHTMLPath,
		output: md2slides.DefaultPDFPath,
	}
	if c.Input != "" {
		s.input = c.Input
	}
	if c.Output != "" {
		s.output = c.Output
	}

	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		s.opts = append(s.opts, md2slides.WithTimeout(timeout))
	}

	if c.HasSettleDelay() {
		delay, err := c.SettleDelayDuration()
		if err != nil {
			return nil, err
		}
		if delay < 0 {
			return nil, fmt.Errorf("%w: export.settleDelay must not be negative", config.ErrInvalidValue)
		}
		s.opts = append(s.opts, md2slides.WithSettleDelay(delay))
	}

	if c.Viewport.Width != 0 || c.Viewport.Height != 0 {
		w, h := c.Viewport.Width, c.Viewport.Height
		if w == 0 {
			w = md2slides.DefaultViewportWidth
		}
		if h == 0 {
			h = md2slides.DefaultViewportHeight
		}
		if w < 0 || h < 0 {
			return nil, fmt.Errorf("%w: export.viewport must be positive", config.ErrInvalidValue)
		}
		s.opts = append(s.opts, md2slides.WithViewport(w, h))
	}
	return s, nil
}
