package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger without timestamps at Info level.
func NewLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           false,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// SetVerbosity maps --quiet and --verbose to a log level.
// Verbose wins when both are set.
func SetVerbosity(log *logrus.Logger, quiet, verbose bool) {
	switch {
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}
