package weight

import (
	"io"
	"math"

	"github.com/katalvlaran/wfst/semiring"
)

// Tropical is the min-plus semiring over the non-negative reals extended
// with +Inf: Plus = min, Times = +, Zero = +Inf, One = 0. It is the usual
// weight of shortest-path automata.
type Tropical float64

var _ semiring.Weight[Tropical, Tropical] = Tropical(0)

// NewTropical returns the tropical weight v.
func NewTropical(v float64) Tropical { return Tropical(v) }

// Value returns the underlying float.
func (w Tropical) Value() float64 { return float64(w) }

// Type returns "tropical".
func (Tropical) Type() string { return "tropical" }

// Zero returns +Inf.
func (Tropical) Zero() Tropical { return Tropical(math.Inf(1)) }

// One returns 0.
func (Tropical) One() Tropical { return 0 }

// NoWeight returns NaN.
func (Tropical) NoWeight() Tropical { return Tropical(math.NaN()) }

// Member rejects NaN and -Inf.
func (w Tropical) Member() bool {
	v := float64(w)
	return !math.IsNaN(v) && !math.IsInf(v, -1)
}

// Properties: left and right semiring, commutative, idempotent, path.
func (Tropical) Properties() semiring.Properties {
	return semiring.Properties{
		LeftSemiring:  true,
		RightSemiring: true,
		Commutative:   true,
		Idempotent:    true,
		Path:          true,
	}
}

// Plus returns the minimum.
func (w Tropical) Plus(v Tropical) Tropical {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}
	if v < w {
		return v
	}

	return w
}

// Times returns the sum.
func (w Tropical) Times(v Tropical) Tropical {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}
	if math.IsInf(float64(w), 1) || math.IsInf(float64(v), 1) {
		return w.Zero()
	}

	return w + v
}

// Divide returns w - v on any side; dividing by Zero is undefined.
func (w Tropical) Divide(v Tropical, _ semiring.DivideType) Tropical {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}
	if math.IsInf(float64(v), 1) {
		return w.NoWeight()
	}
	if math.IsInf(float64(w), 1) {
		return w.Zero()
	}

	return w - v
}

// Reverse is the identity: Times is commutative.
func (w Tropical) Reverse() Tropical { return w }

// Equal compares exactly; NoWeight equals NoWeight.
func (w Tropical) Equal(v Tropical) bool { return semiring.EqualFloat(float64(w), float64(v)) }

// ApproxEqual compares within delta.
func (w Tropical) ApproxEqual(v Tropical, delta float64) bool {
	return semiring.ApproxEqualFloat(float64(w), float64(v), delta)
}

// String renders the textual form.
func (w Tropical) String() string { return formatFloat(float64(w)) }

// Parse decodes the textual form.
func (Tropical) Parse(s string) (Tropical, error) {
	v, err := parseFloat(s)
	return Tropical(v), err
}

// Write encodes w as fixed64.
func (w Tropical) Write(out io.Writer) error { return writeFloat(out, float64(w)) }

// Read decodes a value written by Write.
func (Tropical) Read(in io.Reader) (Tropical, error) {
	v, err := readFloat(in)
	return Tropical(v), err
}
