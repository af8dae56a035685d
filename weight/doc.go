// Package weight provides concrete semiring weights and their sample
// generators.
//
// Types:
//
//   - Tropical:    (min, +, +Inf, 0). Commutative, idempotent, path.
//   - Log:         (−log(e^−a + e^−b), +, +Inf, 0). Commutative.
//   - MinMax:      (min, max, +Inf, −Inf). Commutative, idempotent, path.
//   - LeftString:  (longest common prefix, concatenation, Infinity, Epsilon).
//     Left semiring, idempotent. Reverse is a RightString.
//   - RightString: (longest common suffix, concatenation, Infinity, Epsilon).
//     Right semiring, idempotent. Reverse is a LeftString.
//   - Product:     componentwise pair of two weights, text "(a,b)". Keeps the
//     flags both components share, never path.
//
// All float weights use NaN as NoWeight; string weights use a sequence
// holding the single reserved LabelBad.
//
// Serialization:
//
//   - Binary: protobuf wire primitives (fixed64 for floats, fixed32 for label
//     counts and labels), little-endian, lossless.
//   - Text: floats in shortest round-trip form with "Infinity", "-Infinity"
//     and "BadNumber"; strings as labels joined by '_' with "Infinity",
//     "Epsilon" and "BadString".
//
// Generators (NewFloatGenerator, NewLeftStringGenerator,
// NewRightStringGenerator) are deterministic for a given seed and emit Zero
// and One with configurable probability. NewProductGenerator combines two
// of them; semiring.SplitRand gives each part its own stream.
//
// Adder sums with Plus; for Log the sum is Kahan-compensated.
package weight
