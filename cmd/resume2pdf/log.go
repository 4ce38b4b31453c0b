package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// levelFor maps -q and -v to a log level. Verbose wins over quiet.
func levelFor(f commonFlags) log.Level {
	switch {
	case f.verbose:
		return log.DebugLevel
	case f.quiet:
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
