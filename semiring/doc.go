// Package semiring defines the contract every weight type must satisfy to
// label transitions of a weighted automaton, together with the capability
// flags that tell algorithms (and the law verifier in weighttest) which
// algebraic identities a type promises.
//
// What:
//
//   - Weight[W, R]: the value-level contract. Plus and Times are the two
//     semiring operations; Zero, One and NoWeight are type-level constants
//     exposed as methods that ignore their receiver, so they are callable on
//     the zero value (var w W; w.Zero()). R is the reverse weight type.
//   - Properties: named capability flags (LeftSemiring, RightSemiring,
//     Commutative, Idempotent, Path) plus the derived Semiring().
//   - DivideType: which one-sided inverse Divide is asked for.
//   - Power: repeated Times with Power(w, 0) == One.
//   - ApproxEqualFloat: tolerance equality for float-backed weights.
//   - Generator[W]: a source of sample weights; NewRand fixes the seed policy.
//
// Invalid results are values, not errors: an operation with a NoWeight operand
// returns NoWeight, and callers detect it through Member.
//
// Complexity:
//
//   - All helpers here are O(1) apart from Power, which is O(n) Times calls.
package semiring
