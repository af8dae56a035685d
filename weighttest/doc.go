// Package weighttest verifies that a weight type obeys the semiring laws
// the automaton algorithms rely on.
//
// A Tester draws triples (w1, w2, w3) from a generator and checks, in this
// order, the groups
//
//	semiring  closure, associativity, identities, NoWeight propagation,
//	          commutativity, annihilation, Power, distributivity,
//	          idempotence, path, property consistency
//	division  w1*w2 divided back by w1 (left) or w2 (right)
//	reverse   involution and the reversal of Plus and Times
//	equality  reflexive, symmetric, transitive
//	io        binary and text round trips
//	copy      value copies compare equal
//
// Laws that depend on a capability (left/right distributivity, Times
// commutativity, idempotence, the path property, one-sided division) run
// only when the type's Properties report it. Comparisons that can suffer
// rounding use ApproxEqual with the Tester's delta (semiring.Delta unless
// WithDelta is given).
//
// How a broken law is reported depends on the Mode:
//
//	ModeFailFast   Test returns the first *Violation; nothing else runs.
//	ModeAggregate  every violation of the failing iteration is returned.
//	ModeFatal      the violation is logged at FATAL and the process exits.
//
// Basic use inside a test:
//
//	gen := weight.NewFloatGenerator[weight.Tropical](weight.WithSeed(1))
//	weighttest.Run(t, weighttest.New[weight.Tropical, weight.Tropical](gen), 1000)
//
// RunSuites checks several independent types in parallel.
package weighttest
