// Package logging configures the zerolog logger shared by the CLI and the
// finalizer. Output goes to a console writer; there is no log file because
// the hook keeps no state after it exits.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelFor maps a -v count to a log level.
func LevelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger to write human-readable lines to w and
// returns it.
func Setup(w io.Writer, verbosity int) zerolog.Logger {
	level := LevelFor(verbosity)
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}

	logger := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger

	logger.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
	return logger
}

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
