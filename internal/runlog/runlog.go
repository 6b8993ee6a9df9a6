// Package runlog carries progress and diagnostic lines out of a single
// extraction run.
package runlog

import (
	"context"
	"log/slog"
)

// Sink receives log lines for one run.
type Sink interface {
	Emit(msg string)
}

// Func adapts a plain function to a Sink.
type Func func(msg string)

func (f Func) Emit(msg string) { f(msg) }

// Discard drops every line.
var Discard Sink = Func(func(string) {})

// Slog forwards lines to a structured logger at the given level.
func Slog(log *slog.Logger, level slog.Level) Sink {
	return Func(func(msg string) {
		log.Log(context.Background(), level, msg)
	})
}

// Recorder keeps every emitted line in order. Not safe for concurrent use.
type Recorder struct {
	lines []string
}

func (r *Recorder) Emit(msg string) {
	r.lines = append(r.lines, msg)
}

// Lines returns the recorded lines; never nil.
func (r *Recorder) Lines() []string {
	if r.lines == nil {
		return []string{}
	}
	return r.lines
}

// Tee sends every line to each sink.
func Tee(sinks ...Sink) Sink {
	return Func(func(msg string) {
		for _, s := range sinks {
			s.Emit(msg)
		}
	})
}
