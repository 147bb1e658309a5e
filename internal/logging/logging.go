// Package logging builds the zerolog logger the CLIs write status lines to.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Options selects the logger verbosity.
type Options struct {
	Verbose bool // include debug events
	Quiet   bool // errors only; wins over Verbose
}

// New returns a human-readable, colorless logger writing to w.
// Lines look like "INF converted dst=out/a.c.pdf src=a.c".
func New(w io.Writer, opts Options) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(console).Level(levelFor(opts))
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func levelFor(opts Options) zerolog.Level {
	switch {
	case opts.Quiet:
		return zerolog.ErrorLevel
	case opts.Verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
