package rdparser

import (
	"context"
	"log/slog"
)

// Config is a function that configures a Reader.
type Config func(opts *options)

type options struct {
	file     string
	logger   *slog.Logger
	maxDepth int
}

// WithFile returns a Config that names the input in error locations.
func WithFile(name string) Config {
	return func(opts *options) {
		opts.file = name
	}
}

// WithLogger returns a Config that makes a Reader trace the parsing of
// collections to logger at the debug level.  By default nothing is logged.
func WithLogger(logger *slog.Logger) Config {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithMaxDepth returns a Config that limits how deeply collections may be
// nested.  Reading a collection deeper than n fails with lisp.InvalidInput.
// A value of zero, the default, means there is no limit.
func WithMaxDepth(n int) Config {
	return func(opts *options) {
		opts.maxDepth = n
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
