package main

import (
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/weight"
	"github.com/katalvlaran/wfst/weighttest"
)

// suiteFactory builds the suite for one weight type.
type suiteFactory func(seed int64, repeat int, opts ...weighttest.Option) weighttest.Suite

func suiteFor[W semiring.Weight[W, R], R semiring.Weight[R, W]](gen func(seed int64) semiring.Generator[W]) suiteFactory {
	return func(seed int64, repeat int, opts ...weighttest.Option) weighttest.Suite {
		return weighttest.NewSuite(weighttest.New[W, R](gen(seed), opts...), repeat)
	}
}

// weightNames lists the checked types in run order.
var weightNames = []string{"tropical", "log", "minmax", "left_string", "right_string", "product"}

var factories = map[string]suiteFactory{
	"tropical": suiteFor[weight.Tropical, weight.Tropical](func(seed int64) semiring.Generator[weight.Tropical] {
		return weight.NewFloatGenerator[weight.Tropical](weight.WithSeed(seed))
	}),
	"log": suiteFor[weight.Log, weight.Log](func(seed int64) semiring.Generator[weight.Log] {
		return weight.NewFloatGenerator[weight.Log](weight.WithSeed(seed))
	}),
	"minmax": suiteFor[weight.MinMax, weight.MinMax](func(seed int64) semiring.Generator[weight.MinMax] {
		return weight.NewFloatGenerator[weight.MinMax](weight.WithSeed(seed), weight.WithRange(-5, 5))
	}),
	"left_string": suiteFor[weight.LeftString, weight.RightString](func(seed int64) semiring.Generator[weight.LeftString] {
		return weight.NewLeftStringGenerator(weight.WithSeed(seed))
	}),
	"right_string": suiteFor[weight.RightString, weight.LeftString](func(seed int64) semiring.Generator[weight.RightString] {
		return weight.NewRightStringGenerator(weight.WithSeed(seed))
	}),
	"product": suiteFor[tropicalString, tropicalStringReverse](func(seed int64) semiring.Generator[tropicalString] {
		rngs := semiring.SplitRand(seed, 2)
		return weight.NewProductGenerator[weight.Tropical, weight.Tropical, weight.LeftString, weight.RightString](
			weight.NewFloatGenerator[weight.Tropical](weight.WithRand(rngs[0])),
			weight.NewLeftStringGenerator(weight.WithRand(rngs[1])),
		)
	}),
}

// tropicalString pairs a cost with an output string.
type (
	tropicalString        = weight.Product[weight.Tropical, weight.Tropical, weight.LeftString, weight.RightString]
	tropicalStringReverse = weight.Product[weight.Tropical, weight.Tropical, weight.RightString, weight.LeftString]
)

// buildSuites creates one suite per selected type. Each type draws from
// its own stream derived from seed, so results do not depend on
// scheduling.
func buildSuites(cfg Config, opts ...weighttest.Option) []weighttest.Suite {
	suites := make([]weighttest.Suite, 0, len(cfg.Weights))
	for _, name := range cfg.Weights {
		stream := uint64(indexOf(name))
		suites = append(suites, factories[name](semiring.DeriveSeed(cfg.Seed, stream), cfg.Repeat, opts...))
	}

	return suites
}

func indexOf(name string) int {
	for i, n := range weightNames {
		if n == name {
			return i
		}
	}

	return -1
}
