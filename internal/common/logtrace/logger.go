// Package logtrace provides logging and request tracing utilities.
// It integrates with zerolog for structured logging on stderr, keeping stdout
// free for command output.
package logtrace

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// InitLogger configures the global logger to write to stderr at the given
// level. A human readable console format is used when stderr is a terminal.
func InitLogger(level zerolog.Level) {
	InitLoggerTo(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))
}

// InitLoggerTo configures the global logger to write to w.
func InitLoggerTo(w io.Writer, level zerolog.Level, console bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// LevelFor maps the CLI verbosity flag to a log level.
func LevelFor(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
