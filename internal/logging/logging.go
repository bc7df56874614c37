// Package logging provides the zerolog-backed implementation of the core
// Logger interface and the process-wide logger setup used by the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds a zerolog logger at the verbosity the CLI requested:
// 0 warn, 1 info, 2+ debug. Output is pretty-printed to the writer.
func Setup(verbosity int, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.DebugLevel
	case verbosity == 1:
		level = zerolog.InfoLevel
	}
	console := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Adapter bridges a zerolog.Logger to the core Logger interface. Args are
// alternating key/value pairs; a trailing key without a value is dropped.
type Adapter struct {
	log zerolog.Logger
}

// NewAdapter wraps the given logger with a component field.
func NewAdapter(log zerolog.Logger, component string) *Adapter {
	return &Adapter{log: log.With().Str("component", component).Logger()}
}

// Debug implements the core Logger interface.
func (a *Adapter) Debug(msg string, args ...any) { a.emit(a.log.Debug(), msg, args) }

// Info implements the core Logger interface.
func (a *Adapter) Info(msg string, args ...any) { a.emit(a.log.Info(), msg, args) }

// Warn implements the core Logger interface.
func (a *Adapter) Warn(msg string, args ...any) { a.emit(a.log.Warn(), msg, args) }

// Error implements the core Logger interface.
func (a *Adapter) Error(msg string, args ...any) { a.emit(a.log.Error(), msg, args) }

func (a *Adapter) emit(event *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, args[i+1])
	}
	event.Msg(msg)
}
