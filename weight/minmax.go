package weight

import (
	"io"
	"math"

	"github.com/katalvlaran/wfst/semiring"
)

// MinMax is the (min, max) semiring over the extended reals:
// Plus = min, Times = max, Zero = +Inf, One = −Inf.
type MinMax float64

var _ semiring.Weight[MinMax, MinMax] = MinMax(0)

// NewMinMax returns the min-max weight v.
func NewMinMax(v float64) MinMax { return MinMax(v) }

// Value returns the underlying float.
func (w MinMax) Value() float64 { return float64(w) }

// Type returns "minmax".
func (MinMax) Type() string { return "minmax" }

// Zero returns +Inf.
func (MinMax) Zero() MinMax { return MinMax(math.Inf(1)) }

// One returns −Inf.
func (MinMax) One() MinMax { return MinMax(math.Inf(-1)) }

// NoWeight returns NaN.
func (MinMax) NoWeight() MinMax { return MinMax(math.NaN()) }

// Member rejects NaN only; both infinities are valid.
func (w MinMax) Member() bool { return !math.IsNaN(float64(w)) }

// Properties: left and right semiring, commutative, idempotent, path.
func (MinMax) Properties() semiring.Properties {
	return semiring.Properties{
		LeftSemiring:  true,
		RightSemiring: true,
		Commutative:   true,
		Idempotent:    true,
		Path:          true,
	}
}

// Plus returns the minimum.
func (w MinMax) Plus(v MinMax) MinMax {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}

	return MinMax(math.Min(float64(w), float64(v)))
}

// Times returns the maximum.
func (w MinMax) Times(v MinMax) MinMax {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}

	return MinMax(math.Max(float64(w), float64(v)))
}

// Divide returns w when w >= v and NoWeight otherwise, on any side.
// Comparisons with NaN are false, so NoWeight operands propagate.
func (w MinMax) Divide(v MinMax, _ semiring.DivideType) MinMax {
	if w >= v {
		return w
	}

	return w.NoWeight()
}

// Reverse is the identity.
func (w MinMax) Reverse() MinMax { return w }

// Equal compares exactly; NoWeight equals NoWeight.
func (w MinMax) Equal(v MinMax) bool { return semiring.EqualFloat(float64(w), float64(v)) }

// ApproxEqual compares within delta.
func (w MinMax) ApproxEqual(v MinMax, delta float64) bool {
	return semiring.ApproxEqualFloat(float64(w), float64(v), delta)
}

func (w MinMax) String() string { return formatFloat(float64(w)) }

// Parse decodes the textual form.
func (MinMax) Parse(s string) (MinMax, error) {
	v, err := parseFloat(s)
	return MinMax(v), err
}

func (w MinMax) Write(out io.Writer) error { return writeFloat(out, float64(w)) }

// Read decodes a value written by Write.
func (MinMax) Read(in io.Reader) (MinMax, error) {
	v, err := readFloat(in)
	return MinMax(v), err
}
