package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the tool's logger. level is one of debug|info|warn|error
// (anything else means info); format "json" writes raw JSON lines, anything
// else a human readable console format.
func NewLogger(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if !strings.EqualFold(format, "json") {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
