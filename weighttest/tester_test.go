package weighttest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wfst/fstlog"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/weight"
	"github.com/katalvlaran/wfst/weighttest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const iterations = 2000

func TestBuiltinWeightsSatisfyLaws(t *testing.T) {
	t.Run("tropical", func(t *testing.T) {
		gen := weight.NewFloatGenerator[weight.Tropical](weight.WithSeed(1))
		weighttest.Run(t, weighttest.New[weight.Tropical, weight.Tropical](gen), iterations)
	})
	t.Run("log", func(t *testing.T) {
		gen := weight.NewFloatGenerator[weight.Log](weight.WithSeed(2))
		weighttest.Run(t, weighttest.New[weight.Log, weight.Log](gen), iterations)
	})
	t.Run("minmax", func(t *testing.T) {
		gen := weight.NewFloatGenerator[weight.MinMax](weight.WithSeed(3), weight.WithRange(-5, 5))
		weighttest.Run(t, weighttest.New[weight.MinMax, weight.MinMax](gen), iterations)
	})
	t.Run("left_string", func(t *testing.T) {
		gen := weight.NewLeftStringGenerator(weight.WithSeed(4))
		weighttest.Run(t, weighttest.New[weight.LeftString, weight.RightString](gen), iterations)
	})
	t.Run("right_string", func(t *testing.T) {
		gen := weight.NewRightStringGenerator(weight.WithSeed(5), weight.WithAlphabetSize(2))
		weighttest.Run(t, weighttest.New[weight.RightString, weight.LeftString](gen), iterations)
	})
	t.Run("product", func(t *testing.T) {
		rngs := semiring.SplitRand(6, 2)
		gen := weight.NewProductGenerator[weight.Tropical, weight.Tropical, weight.LeftString, weight.RightString](
			weight.NewFloatGenerator[weight.Tropical](weight.WithRand(rngs[0])),
			weight.NewLeftStringGenerator(weight.WithRand(rngs[1])),
		)
		weighttest.Run(t, weighttest.New[
			weight.Product[weight.Tropical, weight.Tropical, weight.LeftString, weight.RightString],
			weight.Product[weight.Tropical, weight.Tropical, weight.RightString, weight.LeftString],
		](gen), iterations)
	})
}

func TestTester_FailFast(t *testing.T) {
	tester := weighttest.New[ring, ring](constant(ring{v: 3, fault: faultPlus}))

	err := tester.Test(10)
	require.Error(t, err)
	assert.ErrorIs(t, err, weighttest.ErrViolation)

	var v *weighttest.Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, weighttest.GroupSemiring, v.Group)
	assert.Equal(t, "identity", v.Law)
	assert.Equal(t, "Plus(w1, Zero()) == w1", v.Condition)
	assert.Equal(t, 0, v.Iteration)
	assert.Equal(t, "toy", v.Type)
	assert.Equal(t, []string{"w1 = 3", "w2 = 3", "w3 = 3"}, v.Operands)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), "toy: semiring/identity violated at iteration 0")
}

func TestTester_Aggregate(t *testing.T) {
	tester := weighttest.New[ring, ring](
		constant(ring{v: 3, fault: faultPlus}),
		weighttest.WithMode(weighttest.ModeAggregate),
	)

	err := tester.Test(10)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2, "both Zero identity laws break")

	conditions := make([]string, len(errs))
	for i, e := range errs {
		var v *weighttest.Violation
		require.True(t, errors.As(e, &v))
		conditions[i] = v.Condition
	}
	assert.Equal(t, []string{"Plus(w1, Zero()) == w1", "Plus(Zero(), w1) == w1"}, conditions)
}

func TestTester_Division(t *testing.T) {
	tester := weighttest.New[ring, ring](cycle[full](faultDivide, 2, 3))
	err := tester.Test(5)
	var v *weighttest.Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, weighttest.GroupDivision, v.Group)
	assert.Equal(t, "left division", v.Law)

	assert.NoError(t, tester.Test(5, false), "division laws are skipped on request")
}

func TestTester_PropertyConsistency(t *testing.T) {
	tester := weighttest.New[toy[leftCommuted], toy[leftCommuted]](constant(toy[leftCommuted]{v: 1}))
	assert.Equal(t, semiring.Properties{LeftSemiring: true, Commutative: true}, toy[leftCommuted]{v: 5, fault: faultPlus}.Properties())

	var v *weighttest.Violation
	require.True(t, errors.As(tester.Test(1), &v))
	assert.Equal(t, "properties", v.Law)
	assert.Equal(t, "Commutative implies Semiring", v.Condition)
}

func TestTester_TextRoundTrip(t *testing.T) {
	tester := weighttest.New[ring, ring](constant(ring{v: 1, fault: faultText}))

	err := tester.Test(1)
	var v *weighttest.Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, weighttest.GroupIO, v.Group)
	assert.Equal(t, "text", v.Law)
	assert.ErrorIs(t, err, weight.ErrParse)
}

func TestTester_NoWeightSampleBreaksClosure(t *testing.T) {
	gen := weight.NewFloatGenerator[weight.Tropical](
		weight.WithSeed(9),
		weight.WithNoWeightProbability(1),
		weight.WithZeroProbability(0),
		weight.WithOneProbability(0),
	)
	err := weighttest.New[weight.Tropical, weight.Tropical](gen).Test(1)

	var v *weighttest.Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "closure", v.Law)
	assert.Equal(t, "Plus(w1, w2).Member()", v.Condition)
}

func TestTester_FatalMode(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	code := -1
	log := fstlog.New(fstlog.WithZap(zap.New(core)), fstlog.WithExit(func(c int) { code = c }))

	tester := weighttest.New[ring, ring](
		constant(ring{v: 3, fault: faultPlus}),
		weighttest.WithMode(weighttest.ModeFatal),
		weighttest.WithLogger(log),
	)
	err := tester.Test(3)

	assert.ErrorIs(t, err, weighttest.ErrViolation)
	assert.Equal(t, fstlog.ExitCodeFatal, code)
	fatal := logs.FilterLevelExact(zapcore.FatalLevel).All()
	require.Len(t, fatal, 1)
	assert.True(t, strings.HasPrefix(fatal[0].Message, `Check failed: "Plus(w1, Zero()) == w1" file: laws.go line: `), fatal[0].Message)
	assert.Equal(t, "identity", fatal[0].ContextMap()["law"])
}

func TestTester_LogsSamplesAtVerbosityOne(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	quiet := fstlog.New(fstlog.WithZap(zap.New(core)))
	loud := fstlog.New(fstlog.WithZap(zap.New(core)), fstlog.WithVerbosity(1))

	gen := weight.NewFloatGenerator[weight.Tropical]()
	require.NoError(t, weighttest.New[weight.Tropical, weight.Tropical](gen, weighttest.WithLogger(quiet)).Test(3))
	assert.Equal(t, 0, logs.Len())

	require.NoError(t, weighttest.New[weight.Tropical, weight.Tropical](gen, weighttest.WithLogger(loud)).Test(3))
	entries := logs.FilterMessage("sample").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "tropical", entries[0].ContextMap()["type"])
	assert.Contains(t, entries[0].ContextMap(), "w3")
}

func TestTester_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := weight.NewFloatGenerator[weight.Tropical]()
	err := weighttest.New[weight.Tropical, weight.Tropical](gen).TestContext(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTester_ZeroIterations(t *testing.T) {
	tester := weighttest.New[ring, ring](constant(ring{v: 3, fault: faultPlus}))
	assert.NoError(t, tester.Test(0))
	assert.Panics(t, func() { _ = tester.Test(-1) })
}

func TestOptions(t *testing.T) {
	assert.Panics(t, func() { weighttest.WithDelta(-1) })
	assert.Panics(t, func() { weighttest.WithMode(weighttest.Mode(7)) })
	assert.Panics(t, func() { weighttest.WithLogger(nil) })
	assert.Panics(t, func() { weighttest.New[ring, ring](nil) })

	for _, m := range []weighttest.Mode{weighttest.ModeFailFast, weighttest.ModeAggregate, weighttest.ModeFatal} {
		got, err := weighttest.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := weighttest.ParseMode("lenient")
	assert.ErrorIs(t, err, weighttest.ErrUnknownMode)
}

// TestTester_DeltaLoosensApproxLaws shows that an inexact Times passes with
// a wide enough delta.
func TestTester_DeltaLoosensApproxLaws(t *testing.T) {
	gen := weight.NewFloatGenerator[weight.Log](weight.WithSeed(21), weight.WithRange(0, 50))
	tester := weighttest.New[weight.Log, weight.Log](gen, weighttest.WithDelta(0))
	tight := tester.Test(500)

	loose := weighttest.New[weight.Log, weight.Log](
		weight.NewFloatGenerator[weight.Log](weight.WithSeed(21), weight.WithRange(0, 50)),
		weighttest.WithDelta(1e-6),
	).Test(500)

	assert.NoError(t, loose)
	if tight != nil {
		var v *weighttest.Violation
		require.True(t, errors.As(tight, &v))
		assert.Contains(t, v.Condition, "ApproxEqual")
	}
}
