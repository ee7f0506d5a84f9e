package cmd

import (
	"time"

	"github.com/rs/zerolog"
)

// logger returns the diagnostics logger, writing to stderr. It logs at debug
// level with -v, info level otherwise.
func logger() *zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose() {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.RFC3339,
	}
	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &l
}
