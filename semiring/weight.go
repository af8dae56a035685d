package semiring

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Weight is the contract a value type W must satisfy to be used as a
// transition weight. R is the type produced by Reverse; it satisfies
// Weight[R, W] in turn, so reversing twice lands back on W.
//
// All methods are pure with respect to the receiver and the argument.
// Zero, One, NoWeight, Properties and Type ignore the receiver.
type Weight[W any, R any] interface {
	fmt.Stringer

	// Type names the semiring, e.g. "tropical".
	Type() string

	// Zero is the additive identity and the multiplicative annihilator.
	Zero() W
	// One is the multiplicative identity.
	One() W
	// NoWeight is the sentinel for an invalid result; it is never a Member.
	NoWeight() W

	// Member reports whether the receiver is a valid semiring element.
	Member() bool

	// Properties reports the static capabilities of the type.
	Properties() Properties

	// Plus is the additive operation. Total: a NoWeight operand yields NoWeight.
	Plus(W) W
	// Times is the multiplicative operation. Total like Plus.
	Times(W) W
	// Divide is the partial inverse of Times on the requested side; it returns
	// a non-member when undefined.
	Divide(W, DivideType) W

	// Reverse maps the receiver to the reverse semiring.
	Reverse() R

	// Equal is an equivalence relation over members and sentinels alike.
	Equal(W) bool
	// ApproxEqual is Equal up to delta; exact semirings ignore delta.
	ApproxEqual(W, float64) bool

	// Write serializes the receiver losslessly.
	Write(io.Writer) error
	// Read decodes a value written by Write. The receiver is not modified.
	Read(io.Reader) (W, error)
	// Parse decodes the textual form produced by String. The receiver is not
	// modified; textual forms may lose precision.
	Parse(string) (W, error)
}

// Cloner is implemented by weights whose representation shares memory
// (slices) and that can produce an independent copy.
type Cloner[W any] interface {
	Clone() W
}

// Multiplier is the subset of Weight needed by Power.
type Multiplier[W any] interface {
	One() W
	Times(W) W
}

// Power returns w multiplied with itself n times; Power(w, 0) is One.
// A type may provide its own Power(int) W, which is then used instead.
// Negative n is treated as 0.
// Complexity: O(n) Times calls for the generic path.
func Power[W Multiplier[W]](w W, n int) W {
	// 1. Honour a type-specific implementation.
	if p, ok := any(w).(interface{ Power(int) W }); ok {
		return p.Power(n)
	}
	// 2. Right fold: w·(w·(…·(w·One))).
	result := w.One()
	for i := 0; i < n; i++ {
		result = w.Times(result)
	}

	return result
}

// Copy returns an independent copy of w, using Clone when available.
func Copy[W any](w W) W {
	if c, ok := any(w).(Cloner[W]); ok {
		return c.Clone()
	}

	return w
}

// EqualFloat compares two float-backed weight values. NaN equals NaN, so the
// NoWeight sentinel of float semirings keeps == reflexive.
func EqualFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

// ApproxEqualFloat reports whether |a-b| <= delta. Infinities compare equal
// only to themselves and NaN only to NaN.
func ApproxEqualFloat(a, b, delta float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}

	return scalar.EqualWithinAbs(a, b, delta)
}
