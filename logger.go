package nth

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger receives the library's debug events. It discards everything by
// default; assign a real logger to see scanner and parser activity.
var Logger = zerolog.Nop()

// Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

// ConsoleLogger builds a human-readable stderr logger at the given level,
// suitable for assigning to Logger from a command-line frontend.
func ConsoleLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}
