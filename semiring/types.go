package semiring

import "strings"

// Delta is the default tolerance used by ApproxEqual when the weights might be
// inexact (log semiring, accumulated floating sums).
const Delta = 1.0 / 1024.0

// DivideType selects which one-sided multiplicative inverse Divide computes.
type DivideType int

const (
	// DivideLeft asks for d such that Times(b, d) == a.
	DivideLeft DivideType = iota
	// DivideRight asks for d such that Times(d, b) == a.
	DivideRight
	// DivideAny is valid only for commutative semirings.
	DivideAny
)

// String returns the canonical name of the divide side.
func (d DivideType) String() string {
	switch d {
	case DivideLeft:
		return "left"
	case DivideRight:
		return "right"
	case DivideAny:
		return "any"
	default:
		return "unknown"
	}
}

// Properties is the static capability descriptor a weight type reports about
// itself. It is queried once per type and gates which laws are applicable.
type Properties struct {
	// LeftSemiring: Times left-distributes over Plus.
	LeftSemiring bool

	// RightSemiring: Times right-distributes over Plus.
	RightSemiring bool

	// Commutative: Times(a, b) == Times(b, a).
	Commutative bool

	// Idempotent: Plus(a, a) == a.
	Idempotent bool

	// Path: Plus(a, b) is always a or b.
	Path bool
}

// Semiring reports whether the type is both a left and a right semiring.
func (p Properties) Semiring() bool {
	return p.LeftSemiring && p.RightSemiring
}

// String lists the set flags, e.g. "semiring|commutative|idempotent".
func (p Properties) String() string {
	var parts []string
	switch {
	case p.Semiring():
		parts = append(parts, "semiring")
	case p.LeftSemiring:
		parts = append(parts, "left_semiring")
	case p.RightSemiring:
		parts = append(parts, "right_semiring")
	}
	if p.Commutative {
		parts = append(parts, "commutative")
	}
	if p.Idempotent {
		parts = append(parts, "idempotent")
	}
	if p.Path {
		parts = append(parts, "path")
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}
