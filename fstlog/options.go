package fstlog

import (
	"io"
	"os"

	"go.uber.org/zap"
)

const (
	panicVerbosityNegative = "fstlog: WithVerbosity: level must be >= 0"
	panicOutputNil         = "fstlog: WithOutput: writer must be non-nil"
	panicZapNil            = "fstlog: WithZap: logger must be non-nil"
	panicExitNil           = "fstlog: WithExit: exit func must be non-nil"
)

// Option configures a Logger.
type Option func(*options)

type options struct {
	verbosity int
	out       io.Writer
	zl        *zap.Logger
	exit      func(int)
	name      string
}

func defaultOptions() options {
	return options{
		out:  os.Stderr,
		exit: os.Exit,
	}
}

// WithVerbosity sets the threshold consulted by V and VInfo. Default 0.
func WithVerbosity(level int) Option {
	if level < 0 {
		panic(panicVerbosityNegative)
	}

	return func(o *options) { o.verbosity = level }
}

// WithOutput sends console records to w instead of stderr.
// Ignored when WithZap is also given.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicOutputNil)
	}

	return func(o *options) { o.out = w }
}

// WithZap routes records through zl instead of the built-in console core.
func WithZap(zl *zap.Logger) Option {
	if zl == nil {
		panic(panicZapNil)
	}

	return func(o *options) { o.zl = zl }
}

// WithExit replaces os.Exit as the action taken after a FATAL record.
func WithExit(exit func(int)) Option {
	if exit == nil {
		panic(panicExitNil)
	}

	return func(o *options) { o.exit = exit }
}

// WithName prefixes records with a logger name, typically the program name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}
