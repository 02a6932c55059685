// Command md2slides turns a Markdown file into a browser slide deck
// (index.html + styles.css).
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
