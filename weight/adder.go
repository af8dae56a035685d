package weight

import "math"

// summable is the subset of the weight contract an Adder needs.
type summable[W any] interface {
	Zero() W
	Plus(W) W
}

// Adder accumulates a running Plus-sum, starting from Zero.
// For Log weights the sum is Kahan-compensated, so long runs of small
// probabilities do not drift. The zero value is ready to use.
type Adder[W summable[W]] struct {
	sum    W
	comp   float64
	primed bool
}

// NewAdder returns an Adder whose sum starts at w.
func NewAdder[W summable[W]](w W) *Adder[W] {
	return &Adder[W]{sum: w, primed: true}
}

// Add folds w into the sum and returns the new sum.
func (a *Adder[W]) Add(w W) W {
	if !a.primed {
		a.Reset()
	}
	if sum, ok := any(a.sum).(Log); ok {
		a.sum = any(a.addLog(sum, any(w).(Log))).(W)
		return a.sum
	}
	a.sum = a.sum.Plus(w)

	return a.sum
}

// addLog is Log Plus with the rounding error carried in a.comp.
func (a *Adder[W]) addLog(sum, w Log) Log {
	switch {
	case !sum.Member() || !w.Member():
		return sum.NoWeight()
	case math.IsInf(float64(sum), 1):
		a.comp = 0
		return w
	case math.IsInf(float64(w), 1):
		return sum
	}
	f1, f2 := float64(sum), float64(w)
	lo := math.Min(f1, f2)
	y := -math.Log1p(math.Exp(-math.Abs(f1-f2))) - a.comp
	t := lo + y
	a.comp = (t - lo) - y

	return Log(t)
}

// Sum returns the current sum.
func (a *Adder[W]) Sum() W {
	if !a.primed {
		a.Reset()
	}

	return a.sum
}

// Reset sets the sum back to Zero.
func (a *Adder[W]) Reset() {
	var w W
	a.sum, a.comp, a.primed = w.Zero(), 0, true
}
