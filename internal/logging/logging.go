// Package logging provides the shared zerolog logger constructor used by
// the ingester and the CLI.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-writer zerolog.Logger at the given level, timestamped
// and written to stderr so it never interleaves with lookup output on stdout.
func New(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
