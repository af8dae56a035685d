package weighttest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wfst/fstlog"
	"github.com/katalvlaran/wfst/semiring"
)

// Mode selects how violations are reported.
type Mode int

const (
	// ModeFailFast returns the first violation.
	ModeFailFast Mode = iota
	// ModeAggregate finishes the failing iteration and returns all of its
	// violations.
	ModeAggregate
	// ModeFatal logs the first violation at FATAL through the Tester's
	// logger, which exits the process.
	ModeFatal
)

// String returns "fail-fast", "aggregate" or "fatal".
func (m Mode) String() string {
	switch m {
	case ModeFailFast:
		return "fail-fast"
	case ModeAggregate:
		return "aggregate"
	case ModeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeFailFast, ModeAggregate, ModeFatal} {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

const (
	panicDeltaInvalid = "weighttest: WithDelta: delta must be finite and >= 0"
	panicModeInvalid  = "weighttest: WithMode: unknown mode"
	panicLoggerNil    = "weighttest: WithLogger: logger must be non-nil"
	panicGeneratorNil = "weighttest: New: generator must be non-nil"
	panicIterations   = "weighttest: Test: iterations must be >= 0"
)

// Option configures a Tester.
type Option func(*options)

type options struct {
	delta float64
	mode  Mode
	log   *fstlog.Logger
}

func defaultOptions() options {
	return options{
		delta: semiring.Delta,
		mode:  ModeFailFast,
		log:   fstlog.Nop(),
	}
}

// WithDelta sets the ApproxEqual tolerance.
func WithDelta(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		panic(panicDeltaInvalid)
	}

	return func(o *options) { o.delta = delta }
}

// WithMode sets the reporting mode. Default ModeFailFast.
func WithMode(m Mode) Option {
	if m < ModeFailFast || m > ModeFatal {
		panic(panicModeInvalid)
	}

	return func(o *options) { o.mode = m }
}

// WithLogger sets the logger used for per-iteration detail (verbosity 1)
// and for ModeFatal.
func WithLogger(log *fstlog.Logger) Option {
	if log == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.log = log }
}
