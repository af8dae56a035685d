package weighttest

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wfst/semiring"
)

// Run runs the Tester inside a test and reports each violation with
// tb.Error before failing the test.
func Run[W semiring.Weight[W, R], R semiring.Weight[R, W]](tb testing.TB, t *Tester[W, R], iterations int, testDivision ...bool) {
	tb.Helper()
	err := t.Test(iterations, testDivision...)
	if err == nil {
		return
	}
	for _, e := range multierr.Errors(err) {
		tb.Error(e)
	}
	tb.FailNow()
}

// Suite is one independently runnable verification, typically one weight
// type.
type Suite interface {
	Name() string
	Run(ctx context.Context) error
}

type suite[W semiring.Weight[W, R], R semiring.Weight[R, W]] struct {
	name       string
	tester     *Tester[W, R]
	iterations int
	division   bool
}

// NewSuite wraps a Tester as a Suite named after its weight type.
func NewSuite[W semiring.Weight[W, R], R semiring.Weight[R, W]](t *Tester[W, R], iterations int, testDivision ...bool) Suite {
	division := true
	if len(testDivision) > 0 {
		division = testDivision[0]
	}

	return &suite[W, R]{name: t.Type(), tester: t, iterations: iterations, division: division}
}

func (s *suite[W, R]) Name() string { return s.name }

func (s *suite[W, R]) Run(ctx context.Context) error {
	return s.tester.TestContext(ctx, s.iterations, s.division)
}

// RunSuites runs every suite in its own goroutine and waits for all of
// them. A failing suite does not stop the others. The result combines the
// suite errors, each prefixed with the suite name, in argument order.
// limit caps concurrency; limit <= 0 means one goroutine per suite.
func RunSuites(ctx context.Context, limit int, suites ...Suite) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	errs := make([]error, len(suites))
	for i, s := range suites {
		g.Go(func() error {
			if err := s.Run(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", s.Name(), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return multierr.Combine(errs...)
}
