package weighttest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/wfst/weight"
	"github.com/katalvlaran/wfst/weighttest"
)

func TestRunSuites(t *testing.T) {
	suites := []weighttest.Suite{
		weighttest.NewSuite(weighttest.New[weight.Tropical, weight.Tropical](
			weight.NewFloatGenerator[weight.Tropical](weight.WithSeed(1))), 500),
		weighttest.NewSuite(weighttest.New[ring, ring](constant(ring{v: 3, fault: faultPlus})), 500),
		weighttest.NewSuite(weighttest.New[weight.LeftString, weight.RightString](
			weight.NewLeftStringGenerator(weight.WithSeed(2))), 500),
		weighttest.NewSuite(weighttest.New[ring, ring](constant(ring{v: 1, fault: faultDivide})), 5, false),
	}
	assert.Equal(t, "tropical", suites[0].Name())

	err := weighttest.RunSuites(context.Background(), 2, suites...)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 1, "only the broken Plus suite fails")
	assert.ErrorIs(t, errs[0], weighttest.ErrViolation)
	assert.Contains(t, errs[0].Error(), "toy: ")
}

func TestRunSuites_AllPass(t *testing.T) {
	err := weighttest.RunSuites(context.Background(), 0,
		weighttest.NewSuite(weighttest.New[weight.Log, weight.Log](weight.NewFloatGenerator[weight.Log]()), 200),
		weighttest.NewSuite(weighttest.New[weight.MinMax, weight.MinMax](weight.NewFloatGenerator[weight.MinMax]()), 200),
	)
	assert.NoError(t, err)
	assert.NoError(t, weighttest.RunSuites(context.Background(), 0))
}

func TestRunSuites_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := weighttest.RunSuites(ctx, 0,
		weighttest.NewSuite(weighttest.New[weight.Log, weight.Log](weight.NewFloatGenerator[weight.Log]()), 10),
	)
	assert.True(t, errors.Is(err, context.Canceled))
}

// recorder is a testing.TB that records failures instead of stopping.
type recorder struct {
	testing.TB
	errors []string
	failed bool
}

func (r *recorder) Helper()           {}
func (r *recorder) Error(args ...any) { r.errors = append(r.errors, args[0].(error).Error()) }
func (r *recorder) FailNow()          { r.failed = true }

func TestRun_ReportsEveryViolation(t *testing.T) {
	rec := &recorder{TB: t}
	tester := weighttest.New[ring, ring](
		constant(ring{v: 3, fault: faultPlus}),
		weighttest.WithMode(weighttest.ModeAggregate),
	)

	weighttest.Run(rec, tester, 5)

	assert.True(t, rec.failed)
	assert.Len(t, rec.errors, 2)
}
