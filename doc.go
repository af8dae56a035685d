// Package wfst collects the pieces needed to check that a weight type is a
// well-behaved semiring for weighted finite-state automata, and a small
// automaton toolkit built on top of them.
//
// Packages:
//
//	semiring/    the weight contract, property flags, Power, tolerance equality, seeded RNG
//	weight/      concrete weights: Tropical, Log, MinMax, LeftString, RightString; generators
//	weighttest/  the law verifier (Tester), violations, run modes, parallel suites
//	fstlog/      leveled logging with a verbosity threshold and fatal Check
//	fst/         mutable weighted automaton, TopSort, YAML text format
//	cmd/fsttopsort       topological sort tool
//	cmd/fstweightcheck   regression driver over the built-in weights
//
// Checking a weight type:
//
//	gen := weight.NewFloatGenerator[weight.Tropical](weight.WithSeed(1))
//	err := weighttest.New[weight.Tropical, weight.Tropical](gen).Test(10000)
//
// err is nil or names the broken law, its condition and the operands.
package wfst
