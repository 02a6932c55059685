// Command slides2pdf prints every slide of a generated deck to an A4
// landscape page and merges the pages into one PDF.
package main

import (
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2slides/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := cli.DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args) {
		cli.SetVerbosity(env.Log, false, true)
	}
	_, _ = maxprocs.Set(maxprocs.Logger(env.Log.Debugf))

	os.Exit(runMain(os.Args, env))
}
