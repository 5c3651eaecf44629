// Package logging builds the zerolog loggers used by the engine and its drivers.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Verbosity levels accepted by Level.
const (
	Quiet   = 0
	Normal  = 1
	Verbose = 2
)

// Level maps a verbosity setting onto a zerolog level. Negative verbosity
// disables logging entirely.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity < Quiet:
		return zerolog.Disabled
	case verbosity == Quiet:
		return zerolog.WarnLevel
	case verbosity == Normal:
		return zerolog.InfoLevel
	}
	return zerolog.DebugLevel
}

// New returns a human-readable logger writing to w at the given level.
// Lines carry no timestamp and no colour so they can be embedded in the
// referee stream.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	cw := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(cw).Level(level)
}

// ForVerbosity is New with the level taken from a verbosity setting.
func ForVerbosity(w io.Writer, verbosity int) zerolog.Logger {
	return New(w, Level(verbosity))
}
