package weight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/weight"
)

var logw weight.Log

func TestLog_Plus(t *testing.T) {
	// −log(e^0 + e^0) = −log 2
	got := logw.One().Plus(logw.One())
	assert.InDelta(t, -math.Ln2, got.Value(), 1e-12)

	w := weight.NewLog(3)
	assert.True(t, w.Plus(logw.Zero()).Equal(w), "Zero is an exact identity")
	assert.True(t, logw.Zero().Plus(w).Equal(w))
	assert.True(t, w.Plus(weight.NewLog(5)).Equal(weight.NewLog(5).Plus(w)))
}

func TestLog_PlusAssociativeApprox(t *testing.T) {
	w1, w2, w3 := weight.NewLog(1), weight.NewLog(2), weight.NewLog(4)
	left := w1.Plus(w2.Plus(w3))
	right := w1.Plus(w2).Plus(w3)
	assert.True(t, left.ApproxEqual(right, semiring.Delta))
}

func TestLog_TimesDivide(t *testing.T) {
	w1, w2 := weight.NewLog(2), weight.NewLog(3)
	p := w1.Times(w2)
	assert.Equal(t, 5.0, p.Value())
	assert.True(t, p.Divide(w1, semiring.DivideLeft).Equal(w2))
	assert.True(t, w1.Times(logw.Zero()).Equal(logw.Zero()))
	assert.False(t, p.Divide(logw.Zero(), semiring.DivideAny).Member())
}

func TestLog_Properties(t *testing.T) {
	props := logw.Properties()
	assert.True(t, props.Semiring())
	assert.True(t, props.Commutative)
	assert.False(t, props.Idempotent)
	assert.False(t, props.Path)
	assert.Equal(t, "log", logw.Type())
}

func TestLog_NoWeight(t *testing.T) {
	bad := logw.NoWeight()
	assert.False(t, bad.Member())
	assert.False(t, weight.NewLog(1).Plus(bad).Member())
	assert.False(t, bad.Times(weight.NewLog(1)).Member())
}

// TestAdder_Log sums One a thousand times and compares with a plain fold.
func TestAdder_Log(t *testing.T) {
	var adder weight.Adder[weight.Log]
	sum := logw.Zero()
	for i := 0; i < 1000; i++ {
		sum = sum.Plus(logw.One())
		adder.Add(logw.One())
	}
	assert.True(t, sum.ApproxEqual(adder.Sum(), semiring.Delta))
	assert.InDelta(t, -math.Log(1000), adder.Sum().Value(), 1e-9)
}

// TestAdder_LogCompensated sums many equal probabilities and compares with
// the closed form.
func TestAdder_LogCompensated(t *testing.T) {
	const n = 100000
	adder := weight.NewAdder(logw.Zero())
	for i := 0; i < n; i++ {
		adder.Add(weight.NewLog(math.Log(n)))
	}
	assert.InDelta(t, 0, adder.Sum().Value(), 1e-11, "n times probability 1/n is 1")

	adder.Reset()
	assert.True(t, adder.Sum().Equal(logw.Zero()))
	assert.Equal(t, 2.0, adder.Add(weight.NewLog(2)).Value(), "Reset clears the compensation")

	assert.False(t, adder.Add(logw.NoWeight()).Member())
}

func TestAdder_Tropical(t *testing.T) {
	adder := weight.NewAdder(weight.NewTropical(9))
	adder.Add(weight.NewTropical(4))
	adder.Add(weight.NewTropical(6))
	assert.Equal(t, 4.0, adder.Sum().Value())

	adder.Reset()
	assert.True(t, adder.Sum().Equal(tropical.Zero()))
}
