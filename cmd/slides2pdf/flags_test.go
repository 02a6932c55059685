package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2slides/internal/cli"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		want      commonFlags
		wantHelp  bool
		wantUsage bool
	}{
		{"none", []string{"slides2pdf"}, commonFlags{}, false, false},
		{"all", []string{"slides2pdf", "-c", "work", "-q", "-v", "--version"}, commonFlags{config: "work", quiet: true, verbose: true, version: true}, false, false},
		{"long config", []string{"slides2pdf", "--config=work.yaml"}, commonFlags{config: "work.yaml"}, false, false},
		{"help", []string{"slides2pdf", "--help"}, commonFlags{}, true, false},
		{"unknown", []string{"slides2pdf", "--mode", "complex"}, commonFlags{}, false, true},
		{"positional", []string{"slides2pdf", "index.html"}, commonFlags{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := parseFlags(tt.args)
			switch {
			case tt.wantHelp:
				if !errors.Is(err, flag.ErrHelp) {
					t.Fatalf("error = %v, want flag.ErrHelp", err)
				}
				return
			case tt.wantUsage:
				if !errors.Is(err, cli.ErrUsage) {
					t.Fatalf("error = %v, want ErrUsage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *f != tt.want {
				t.Errorf("flags = %+v, want %+v", *f, tt.want)
			}
		})
	}
}
