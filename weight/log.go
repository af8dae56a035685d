package weight

import (
	"io"
	"math"

	"github.com/katalvlaran/wfst/semiring"
)

// Log is the log semiring: weights are negative log probabilities,
// Plus(a, b) = −log(e^−a + e^−b), Times = +, Zero = +Inf, One = 0.
// Plus is inexact, so laws involving it are checked with ApproxEqual.
type Log float64

var _ semiring.Weight[Log, Log] = Log(0)

// NewLog returns the log weight v.
func NewLog(v float64) Log { return Log(v) }

// Value returns the underlying float.
func (w Log) Value() float64 { return float64(w) }

// Type returns "log".
func (Log) Type() string { return "log" }

// Zero returns +Inf.
func (Log) Zero() Log { return Log(math.Inf(1)) }

// One returns 0.
func (Log) One() Log { return 0 }

// NoWeight returns NaN.
func (Log) NoWeight() Log { return Log(math.NaN()) }

// Member rejects NaN and -Inf.
func (w Log) Member() bool {
	v := float64(w)
	return !math.IsNaN(v) && !math.IsInf(v, -1)
}

// Properties: left and right semiring, commutative.
func (Log) Properties() semiring.Properties {
	return semiring.Properties{LeftSemiring: true, RightSemiring: true, Commutative: true}
}

// Plus returns −log(e^−w + e^−v), computed as min − log1p(e^−|w−v|).
func (w Log) Plus(v Log) Log {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}
	a, b := float64(w), float64(v)
	if math.IsInf(a, 1) {
		return v
	}
	if math.IsInf(b, 1) {
		return w
	}
	if a > b {
		a, b = b, a
	}

	return Log(a - math.Log1p(math.Exp(a-b)))
}

// Times returns the sum.
func (w Log) Times(v Log) Log {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}
	if math.IsInf(float64(w), 1) || math.IsInf(float64(v), 1) {
		return w.Zero()
	}

	return w + v
}

// Divide returns w - v on any side; dividing by Zero is undefined.
func (w Log) Divide(v Log, _ semiring.DivideType) Log {
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

// Reverse is the identity.
func (w Log) Reverse() Log { return w }

// Equal compares exactly; NoWeight equals NoWeight.
func (w Log) Equal(v Log) bool { return semiring.EqualFloat(float64(w), float64(v)) }

// ApproxEqual compares within delta.
func (w Log) ApproxEqual(v Log, delta float64) bool {
	return semiring.ApproxEqualFloat(float64(w), float64(v), delta)
}

func (w Log) String() string { return formatFloat(float64(w)) }

// Parse decodes the textual form.
func (Log) Parse(s string) (Log, error) {
	v, err := parseFloat(s)
	return Log(v), err
}

func (w Log) Write(out io.Writer) error { return writeFloat(out, float64(w)) }

// Read decodes a value written by Write.
func (Log) Read(in io.Reader) (Log, error) {
	v, err := readFloat(in)
	return Log(v), err
}
