// Package logging builds the process logger.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// EnvDevelopment switches the logger to human-readable console output.
const EnvDevelopment = "development"

// New returns a timestamped JSON logger writing to w, or a console logger in
// the development environment. level defaults to info when empty or invalid.
func New(w io.Writer, env, level string) zerolog.Logger {
	if env == EnvDevelopment {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
