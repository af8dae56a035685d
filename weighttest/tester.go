package weighttest

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/wfst/semiring"
)

// Tester checks the laws of weight type W, whose reverse type is R.
// A Tester owns its generator and is not safe for concurrent use.
type Tester[W semiring.Weight[W, R], R semiring.Weight[R, W]] struct {
	gen   semiring.Generator[W]
	opts  options
	props semiring.Properties
	typ   string
}

// New returns a Tester drawing samples from gen. R cannot be inferred, so
// both type arguments are spelled out:
//
//	weighttest.New[weight.LeftString, weight.RightString](gen)
func New[W semiring.Weight[W, R], R semiring.Weight[R, W]](gen semiring.Generator[W], opts ...Option) *Tester[W, R] {
	if gen == nil {
		panic(panicGeneratorNil)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var w W

	return &Tester[W, R]{
		gen:   gen,
		opts:  o,
		props: w.Properties(),
		typ:   w.Type(),
	}
}

// Type returns the name of the weight type under test.
func (t *Tester[W, R]) Type() string { return t.typ }

// Test runs iterations rounds of checks. Division laws are checked unless
// testDivision is given as false. The result is nil, a *Violation
// (ModeFailFast, ModeFatal) or a multierr combination of them
// (ModeAggregate).
func (t *Tester[W, R]) Test(iterations int, testDivision ...bool) error {
	return t.TestContext(context.Background(), iterations, testDivision...)
}

// TestContext is Test with cancellation between iterations.
func (t *Tester[W, R]) TestContext(ctx context.Context, iterations int, testDivision ...bool) error {
	if iterations < 0 {
		panic(panicIterations)
	}
	division := true
	if len(testDivision) > 0 {
		division = testDivision[0]
	}

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// 1) Draw the sample triple.
		w1 := t.gen.Generate()
		w2 := t.gen.Generate()
		w3 := t.gen.Generate()
		t.opts.log.VInfo(1, "sample",
			zap.String("type", t.typ),
			zap.Stringer("w1", w1),
			zap.Stringer("w2", w2),
			zap.Stringer("w3", w3),
		)

		// 2) Run the groups in fixed order.
		it := &iteration[W, R]{
			t:        t,
			index:    i,
			operands: []string{"w1 = " + w1.String(), "w2 = " + w2.String(), "w3 = " + w3.String()},
		}
		it.semiringLaws(w1, w2, w3)
		if division {
			it.divisionLaws(w1, w2)
		}
		it.reverseLaws(w1, w2)
		it.equalityLaws(w1, w2, w3)
		it.ioLaws(w1)
		it.copyLaws(w1)

		// 3) Stop at the first iteration that broke anything.
		if it.err != nil {
			return it.err
		}
	}

	return nil
}

// iteration is the state of one round of checks.
type iteration[W semiring.Weight[W, R], R semiring.Weight[R, W]] struct {
	t        *Tester[W, R]
	index    int
	operands []string
	group    Group
	err      error
}

// halted reports whether further checks should be skipped.
func (it *iteration[W, R]) halted() bool {
	return it.err != nil && it.t.opts.mode != ModeAggregate
}

// check evaluates cond unless the iteration has halted and records a
// violation when it is false.
func (it *iteration[W, R]) check(law, condition string, cond func() bool) {
	if it.halted() || cond() {
		return
	}
	it.fail(law, condition, nil)
}

// checkErr is check for conditions that can fail with an error.
func (it *iteration[W, R]) checkErr(law, condition string, cond func() (bool, error)) {
	if it.halted() {
		return
	}
	ok, err := cond()
	if ok && err == nil {
		return
	}
	it.fail(law, condition, err)
}

func (it *iteration[W, R]) fail(law, condition string, cause error) {
	v := &Violation{
		Group:     it.group,
		Law:       law,
		Condition: condition,
		Iteration: it.index,
		Type:      it.t.typ,
		Operands:  it.operands,
		Cause:     cause,
	}
	if it.t.opts.mode == ModeFatal {
		// depth 2: fail <- check <- the law group method
		it.t.opts.log.CheckDepth(2, false, condition,
			zap.String("type", v.Type),
			zap.String("group", string(v.Group)),
			zap.String("law", v.Law),
			zap.Int("iteration", v.Iteration),
			zap.Strings("operands", v.Operands),
			zap.NamedError("cause", cause),
		)
	}
	it.err = multierr.Append(it.err, v)
}
