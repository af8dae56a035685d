package weighttest_test

import (
	"io"
	"math"

	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/weight"
)

// fault selects which operation of toy misbehaves.
type fault int

const (
	faultNone            fault = iota
	faultPlus                  // Plus is max instead of min
	faultPlusMean              // Plus averages finite operands
	faultIdempotence           // Plus sums equal operands
	faultPath                  // Plus nudges the minimum of distinct finite operands
	faultNoWeight              // Plus ignores a NoWeight operand
	faultAnnihilator           // Zero does not absorb in Times
	faultTimesOrder            // Times adds one when the left operand is larger
	faultTimesScales           // Times multiplies and One is 1
	faultPower                 // Power multiplies once too often
	faultDivide                // Divide always answers One
	faultDivideRight           // right Divide answers One
	faultDivideRightEven       // right Divide by an even value answers One
	faultReverseShifts         // Reverse adds one
	faultReverseNegates        // Reverse negates
	faultReverseSwaps          // Reverse swaps 3 and 4
	faultEqualOrdered          // Equal is <=
	faultEqualNear             // Equal accepts a distance up to 1
	faultWrite                 // Write stores the value plus one
	faultText                  // String emits garbage
	faultClone                 // Clone adds one
)

// claims fixes the Properties a toy instantiation reports, independently of
// any value.
type claims interface {
	properties() semiring.Properties
}

// full is what min-plus really is.
type full struct{}

func (full) properties() semiring.Properties {
	return semiring.Properties{LeftSemiring: true, RightSemiring: true, Commutative: true, Idempotent: true, Path: true}
}

// rightOnly claims right distributivity alone.
type rightOnly struct{}

func (rightOnly) properties() semiring.Properties {
	return semiring.Properties{RightSemiring: true}
}

// leftCommuted claims Commutative without being a two-sided semiring.
type leftCommuted struct{}

func (leftCommuted) properties() semiring.Properties {
	return semiring.Properties{LeftSemiring: true, Commutative: true}
}

// toy is a min-plus weight that can be told to break one law. The fault
// travels with the value; the claimed Properties come from C.
type toy[C claims] struct {
	v     float64
	fault fault
}

// ring is the honest instantiation.
type ring = toy[full]

var (
	_ semiring.Weight[ring, ring]                           = ring{}
	_ semiring.Weight[toy[rightOnly], toy[rightOnly]]       = toy[rightOnly]{}
	_ semiring.Weight[toy[leftCommuted], toy[leftCommuted]] = toy[leftCommuted]{}
)

func (w toy[C]) with(v float64) toy[C] { return toy[C]{v: v, fault: w.fault} }

func (toy[C]) Type() string { return "toy" }

func (w toy[C]) Zero() toy[C] { return w.with(math.Inf(1)) }

func (w toy[C]) NoWeight() toy[C] { return w.with(math.NaN()) }

func (w toy[C]) Member() bool { return !math.IsNaN(w.v) }

func (w toy[C]) One() toy[C] {
	if w.fault == faultTimesScales {
		return w.with(1)
	}

	return w.with(0)
}

func (toy[C]) Properties() semiring.Properties {
	var c C
	return c.properties()
}

func (w toy[C]) Plus(v toy[C]) toy[C] {
	if !w.Member() || !v.Member() {
		if w.fault == faultNoWeight {
			if w.Member() {
				return w
			}
			return v
		}
		return w.NoWeight()
	}
	lo, hi := math.Min(w.v, v.v), math.Max(w.v, v.v)
	finite := !math.IsInf(hi, 1)
	switch {
	case w.fault == faultPlus:
		return w.with(hi)
	case w.fault == faultPlusMean && finite:
		return w.with((lo + hi) / 2)
	case w.fault == faultIdempotence && lo == hi:
		return w.with(lo + hi)
	case w.fault == faultPath && finite && lo != hi:
		return w.with(lo + 1e-9)
	}

	return w.with(lo)
}

func (w toy[C]) Times(v toy[C]) toy[C] {
	if !w.Member() || !v.Member() {
		return w.NoWeight()
	}
	if math.IsInf(w.v, 1) || math.IsInf(v.v, 1) {
		if w.fault == faultAnnihilator {
			return w.with(math.Min(w.v, v.v))
		}
		return w.Zero()
	}
	switch {
	case w.fault == faultTimesScales:
		return w.with(w.v * v.v)
	case w.fault == faultTimesOrder && w.v > v.v && v.v != 0:
		return w.with(w.v + v.v + 1)
	}

	return w.with(w.v + v.v)
}

// Power folds Times; faultPower folds once more for n > 1.
func (w toy[C]) Power(n int) toy[C] {
	if w.fault == faultPower && n > 1 {
		n++
	}
	p := w.One()
	for i := 0; i < n; i++ {
		p = p.Times(w)
	}

	return p
}

func (w toy[C]) Divide(v toy[C], typ semiring.DivideType) toy[C] {
	if !w.Member() || !v.Member() || math.IsInf(v.v, 1) {
		return w.NoWeight()
	}
	right := typ == semiring.DivideRight
	switch {
	case w.fault == faultDivide,
		w.fault == faultDivideRight && right,
		w.fault == faultDivideRightEven && right && math.Mod(v.v, 2) == 0:
		return w.One()
	}

	return w.with(w.v - v.v)
}

func (w toy[C]) Reverse() toy[C] {
	switch w.fault {
	case faultReverseShifts:
		return w.with(w.v + 1)
	case faultReverseNegates:
		return w.with(-w.v)
	case faultReverseSwaps:
		switch w.v {
		case 3:
			return w.with(4)
		case 4:
			return w.with(3)
		}
	}

	return w
}

func (w toy[C]) Equal(v toy[C]) bool {
	switch w.fault {
	case faultEqualOrdered:
		return w.v <= v.v || semiring.EqualFloat(w.v, v.v)
	case faultEqualNear:
		return semiring.EqualFloat(w.v, v.v) || math.Abs(w.v-v.v) <= 1
	}

	return semiring.EqualFloat(w.v, v.v)
}

func (w toy[C]) ApproxEqual(v toy[C], d float64) bool {
	return semiring.ApproxEqualFloat(w.v, v.v, d)
}

func (w toy[C]) Clone() toy[C] {
	if w.fault == faultClone {
		return w.with(w.v + 1)
	}

	return w
}

func (w toy[C]) String() string {
	if w.fault == faultText {
		return "?"
	}

	return weight.NewTropical(w.v).String()
}

func (w toy[C]) Parse(s string) (toy[C], error) {
	t, err := weight.NewTropical(0).Parse(s)
	return w.with(t.Value()), err
}

func (w toy[C]) Write(out io.Writer) error {
	v := w.v
	if w.fault == faultWrite {
		v++
	}

	return weight.NewTropical(v).Write(out)
}

func (w toy[C]) Read(in io.Reader) (toy[C], error) {
	t, err := weight.NewTropical(0).Read(in)
	return w.with(t.Value()), err
}

// constant always yields w.
func constant[C claims](w toy[C]) semiring.Generator[toy[C]] {
	return semiring.GeneratorFunc[toy[C]](func() toy[C] { return w })
}

// cycle yields toys carrying f with the values vs in turn.
func cycle[C claims](f fault, vs ...float64) semiring.Generator[toy[C]] {
	i := 0
	return semiring.GeneratorFunc[toy[C]](func() toy[C] {
		w := toy[C]{v: vs[i%len(vs)], fault: f}
		i++
		return w
	})
}
