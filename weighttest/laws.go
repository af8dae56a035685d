package weighttest

import (
	"bytes"

	"github.com/katalvlaran/wfst/semiring"
)

func (it *iteration[W, R]) approx(a, b W) bool {
	return a.ApproxEqual(b, it.t.opts.delta)
}

// semiringLaws checks that (Plus, Times, Zero, One) form a semiring of the
// kind the type's Properties claim.
func (it *iteration[W, R]) semiringLaws(w1, w2, w3 W) {
	it.group = GroupSemiring
	p := it.t.props
	zero, one, none := w1.Zero(), w1.One(), w1.NoWeight()

	it.check("closure", "Plus(w1, w2).Member()", func() bool { return w1.Plus(w2).Member() })
	it.check("closure", "Times(w1, w2).Member()", func() bool { return w1.Times(w2).Member() })

	it.check("associativity", "ApproxEqual(Plus(w1, Plus(w2, w3)), Plus(Plus(w1, w2), w3))", func() bool {
		return it.approx(w1.Plus(w2.Plus(w3)), w1.Plus(w2).Plus(w3))
	})
	it.check("associativity", "ApproxEqual(Times(w1, Times(w2, w3)), Times(Times(w1, w2), w3))", func() bool {
		return it.approx(w1.Times(w2.Times(w3)), w1.Times(w2).Times(w3))
	})

	it.check("identity", "Plus(w1, Zero()) == w1", func() bool { return w1.Plus(zero).Equal(w1) })
	it.check("identity", "Plus(Zero(), w1) == w1", func() bool { return zero.Plus(w1).Equal(w1) })
	it.check("identity", "Times(w1, One()) == w1", func() bool { return w1.Times(one).Equal(w1) })
	it.check("identity", "Times(One(), w1) == w1", func() bool { return one.Times(w1).Equal(w1) })

	it.check("no weight", "!NoWeight().Member()", func() bool { return !none.Member() })
	it.check("no weight", "!Plus(w1, NoWeight()).Member()", func() bool { return !w1.Plus(none).Member() })
	it.check("no weight", "!Plus(NoWeight(), w1).Member()", func() bool { return !none.Plus(w1).Member() })
	it.check("no weight", "!Times(w1, NoWeight()).Member()", func() bool { return !w1.Times(none).Member() })
	it.check("no weight", "!Times(NoWeight(), w1).Member()", func() bool { return !none.Times(w1).Member() })

	it.check("plus commutativity", "ApproxEqual(Plus(w1, w2), Plus(w2, w1))", func() bool {
		return it.approx(w1.Plus(w2), w2.Plus(w1))
	})
	if p.Commutative {
		it.check("times commutativity", "ApproxEqual(Times(w1, w2), Times(w2, w1))", func() bool {
			return it.approx(w1.Times(w2), w2.Times(w1))
		})
	}

	it.check("annihilator", "Times(w1, Zero()) == Zero()", func() bool { return w1.Times(zero).Equal(zero) })
	it.check("annihilator", "Times(Zero(), w1) == Zero()", func() bool { return zero.Times(w1).Equal(zero) })

	it.check("power", "Power(w1, 0) == One()", func() bool { return semiring.Power(w1, 0).Equal(one) })
	it.check("power", "Power(w1, 1) == w1", func() bool { return semiring.Power(w1, 1).Equal(w1) })
	it.check("power", "Power(w1, 3) == Times(w1, Times(w1, w1))", func() bool {
		return semiring.Power(w1, 3).Equal(w1.Times(w1.Times(w1)))
	})

	if p.LeftSemiring {
		it.check("left distributivity", "ApproxEqual(Times(w1, Plus(w2, w3)), Plus(Times(w1, w2), Times(w1, w3)))", func() bool {
			return it.approx(w1.Times(w2.Plus(w3)), w1.Times(w2).Plus(w1.Times(w3)))
		})
	}
	if p.RightSemiring {
		it.check("right distributivity", "ApproxEqual(Times(Plus(w1, w2), w3), Plus(Times(w1, w3), Times(w2, w3)))", func() bool {
			return it.approx(w1.Plus(w2).Times(w3), w1.Times(w3).Plus(w2.Times(w3)))
		})
	}
	if p.Idempotent {
		it.check("idempotence", "Plus(w1, w1) == w1", func() bool { return w1.Plus(w1).Equal(w1) })
	}
	if p.Path {
		it.check("path", "Plus(w1, w2) == w1 || Plus(w1, w2) == w2", func() bool {
			s := w1.Plus(w2)
			return s.Equal(w1) || s.Equal(w2)
		})
	}

	it.check("properties", "LeftSemiring || RightSemiring", func() bool {
		return p.LeftSemiring || p.RightSemiring
	})
	if p.Commutative {
		it.check("properties", "Commutative implies Semiring", func() bool { return p.Semiring() })
	}
}

// divisionLaws checks that Divide undoes Times on every side the type
// supports. Right division is checked against w2, and for commutative
// types right division is also checked against w1.
func (it *iteration[W, R]) divisionLaws(w1, w2 W) {
	it.group = GroupDivision
	p := it.t.props
	none := w1.NoWeight()
	prod := w1.Times(w2)

	if p.LeftSemiring {
		it.check("left division", "ApproxEqual(p, Times(w1, Divide(p, w1, left)))", func() bool {
			d := prod.Divide(w1, semiring.DivideLeft)
			return !d.Member() || it.approx(prod, w1.Times(d))
		})
		it.check("left division", "!Divide(w1, NoWeight(), left).Member()", func() bool {
			return !w1.Divide(none, semiring.DivideLeft).Member()
		})
		it.check("left division", "!Divide(NoWeight(), w1, left).Member()", func() bool {
			return !none.Divide(w1, semiring.DivideLeft).Member()
		})
	}

	if p.RightSemiring {
		it.check("right division", "ApproxEqual(p, Times(Divide(p, w2, right), w2))", func() bool {
			d := prod.Divide(w2, semiring.DivideRight)
			return !d.Member() || it.approx(prod, d.Times(w2))
		})
		it.check("right division", "!Divide(w1, NoWeight(), right).Member()", func() bool {
			return !w1.Divide(none, semiring.DivideRight).Member()
		})
		it.check("right division", "!Divide(NoWeight(), w1, right).Member()", func() bool {
			return !none.Divide(w1, semiring.DivideRight).Member()
		})
	}

	if p.Commutative {
		it.check("commutative division", "ApproxEqual(p, Times(Divide(p, w1, right), w1))", func() bool {
			d := prod.Divide(w1, semiring.DivideRight)
			return !d.Member() || it.approx(prod, d.Times(w1))
		})
	}
}

// reverseLaws checks that Reverse is an involution that maps Plus to Plus
// and reverses the order of Times.
func (it *iteration[W, R]) reverseLaws(w1, w2 W) {
	it.group = GroupReverse
	rw1 := w1.Reverse()
	rw2 := w2.Reverse()

	it.check("involution", "Reverse(Reverse(w1)) == w1", func() bool { return rw1.Reverse().Equal(w1) })
	it.check("plus", "Reverse(Plus(w1, w2)) == Plus(Reverse(w1), Reverse(w2))", func() bool {
		return w1.Plus(w2).Reverse().Equal(rw1.Plus(rw2))
	})
	it.check("times", "Reverse(Times(w1, w2)) == Times(Reverse(w2), Reverse(w1))", func() bool {
		return w1.Times(w2).Reverse().Equal(rw2.Times(rw1))
	})
}

// equalityLaws checks that Equal is an equivalence relation.
func (it *iteration[W, R]) equalityLaws(w1, w2, w3 W) {
	it.group = GroupEquality

	it.check("reflexivity", "w1 == w1", func() bool { return w1.Equal(w1) })
	it.check("symmetry", "(w1 == w2) == (w2 == w1)", func() bool { return w1.Equal(w2) == w2.Equal(w1) })
	it.check("transitivity", "w1 == w2 && w2 == w3 implies w1 == w3", func() bool {
		return !(w1.Equal(w2) && w2.Equal(w3)) || w1.Equal(w3)
	})
}

// ioLaws checks the binary and text round trips of w.
func (it *iteration[W, R]) ioLaws(w W) {
	it.group = GroupIO

	it.checkErr("binary", "Read(Write(w1)) == w1", func() (bool, error) {
		var buf bytes.Buffer
		if err := w.Write(&buf); err != nil {
			return false, err
		}
		var v W
		v, err := v.Read(&buf)
		if err != nil {
			return false, err
		}
		return v.Equal(w), nil
	})

	it.checkErr("text", "ApproxEqual(Parse(String(w1)), w1)", func() (bool, error) {
		v, err := w.One().Parse(w.String())
		if err != nil {
			return false, err
		}
		return it.approx(w, v), nil
	})
}

// copyLaws checks that copies of w compare equal to it.
func (it *iteration[W, R]) copyLaws(w W) {
	it.group = GroupCopy

	x := w
	it.check("assignment", "x := w1; w1 == x", func() bool { return w.Equal(x) })
	x = semiring.Copy(w)
	it.check("copy", "x = Copy(w1); w1 == x", func() bool { return w.Equal(x) })
	p := &x
	x = *p
	it.check("self assignment", "x = x; w1 == x", func() bool { return w.Equal(x) })
}
