package cli

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Environment holds injectable dependencies for testability.
// Results go to Stdout; diagnostics go through Log, which writes to Stderr.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Log    *logrus.Logger
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return NewEnv(os.Stdout, os.Stderr)
}

// NewEnv returns an environment writing to the given streams.
func NewEnv(stdout, stderr io.Writer) *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: stdout,
		Stderr: stderr,
		Log:    NewLogger(stderr),
	}
}
