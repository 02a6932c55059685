package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	md2slides "github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/cli"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/watch"
)

// settings is the merged result of flags over config over defaults.
type settings struct {
	input     string
	output    string
	title     string
	mode      md2slides.Mode
	watch     bool
	assembler []md2slides.Option
}

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *cli.Environment) int {
	f, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return cli.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		fmt.Fprintln(env.Stderr, "Run 'md2slides --help' for usage.")
		return cli.ExitUsage
	}

	if f.common.version {
		fmt.Fprintf(env.Stdout, "md2slides %s\n", Version)
		return cli.ExitSuccess
	}

	cli.SetVerbosity(env.Log, f.common.quiet, f.common.verbose)

	ctx, stop := cli.NotifyContext(context.Background())
	defer stop()

	if err := run(ctx, f, env); err != nil {
		fmt.Fprintln(env.Stderr, "error:", cli.Describe(err))
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

func run(ctx context.Context, f *assembleFlags, env *cli.Environment) error {
	cfg := config.DefaultConfig()
	if f.common.config != "" {
		loaded, err := config.LoadConfig(f.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
		env.Log.WithField("config", f.common.config).Debug("config loaded")
	}

	s, err := resolveSettings(f, cfg)
	if err != nil {
		return err
	}

	asm, err := md2slides.NewAssembler(s.assembler...)
	if err != nil {
		return err
	}

	build := func(ctx context.Context) (*md2slides.WriteResult, error) {
		start := env.Now()
		res, err := assemble(ctx, asm, s)
		if err != nil {
			return nil, err
		}
		env.Log.WithField("elapsed", env.Now().Sub(start)).Debug("deck written")
		return res, nil
	}

	res, err := build(ctx)
	if err != nil {
		return err
	}
	printReport(env.Stdout, res)

	if !s.watch {
		return nil
	}

	w, err := watch.New(s.input, func(ctx context.Context) {
		res, err := build(ctx)
		if err != nil {
			env.Log.WithError(err).Error("rebuild failed")
			return
		}
		env.Log.WithField("slides", res.Slides).Info("rebuilt")
	}, watch.WithLogger(env.Log))
	if err != nil {
		return err
	}

	env.Log.WithField("file", s.input).Info("watching for changes, press Ctrl-C to stop")
	return w.Run(ctx)
}

// resolveSettings applies flags over config over built-in defaults.
func resolveSettings(f *assembleFlags, cfg *config.Config) (*settings, error) {
	s := &settings{
		input:  f.input,
		output: pick(f.set["output"], f.output, cfg.Deck.OutputDir, md2slides.DefaultOutputDir),
		title:  pick(f.set["title"], f.title, cfg.Deck.Title, md2slides.DefaultTitle),
		watch:  f.watch,
	}
	if s.input == "" {
		return nil, fmt.Errorf("%w: --input is required", cli.ErrUsage)
	}

	mode, err := md2slides.ParseMode(pick(f.set["mode"], f.mode, cfg.Deck.Mode, md2slides.DefaultMode.String()))
	if err != nil {
		return nil, err
	}
	s.mode = mode

	if p := pick(f.set["asset-path"], f.assetPath, cfg.Assets.BasePath, ""); p != "" {
		s.assembler = append(s.assembler, md2slides.WithAssetPath(p))
	}
	if cfg.Markdown.HighlightStyle != "" {
		s.assembler = append(s.assembler, md2slides.WithHighlightStyle(cfg.Markdown.HighlightStyle))
	}
	if f.absolutePaths || cfg.Markdown.AbsolutePaths {
		s.assembler = append(s.assembler, md2slides.WithAbsolutePaths(true))
	}
	return s, nil
}

// pick returns the flag value when the flag was set, otherwise the config
// value, otherwise the default.
func pick(flagSet bool, flagValue, configValue, def string) string {
	switch {
	case flagSet:
		return flagValue
	case configValue != "":
		return configValue
	default:
		return def
	}
}

// assemble reads the source, builds the deck and writes it out.
func assemble(ctx context.Context, asm *md2slides.Assembler, s *settings) (*md2slides.WriteResult, error) {
	markdown, err := md2slides.ReadSource(s.input)
	if err != nil {
		return nil, err
	}

	sourceDir, err := filepath.Abs(filepath.Dir(s.input))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", md2slides.ErrReadSource, err)
	}

	bundle, err := asm.Assemble(ctx, md2slides.Input{
		Markdown:  markdown,
		Title:     s.title,
		Mode:      s.mode,
		SourceDir: sourceDir,
	})
	if err != nil {
		return nil, err
	}

	return md2slides.WriteBundle(s.output, bundle)
}

// printReport writes the completion report.
func printReport(w io.Writer, res *md2slides.WriteResult) {
	fmt.Fprintf(w, "Output: %s\n", res.Dir)
	fmt.Fprintf(w, "Files:  %s\n", strings.Join(res.Files, ", "))
	fmt.Fprintf(w, "Mode:   %s\n", res.Mode)
	fmt.Fprintf(w, "Slides: %d\n", res.Slides)
}
