package weight

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wfst/semiring"
)

// Text layout of a product weight: "(first,second)".
const (
	productOpen      = "("
	productClose     = ")"
	productSeparator = ','
	productTypeJoin  = "_X_"
)

var _ semiring.Weight[Product[Tropical, Tropical, LeftString, RightString], Product[Tropical, Tropical, RightString, LeftString]] = Product[Tropical, Tropical, LeftString, RightString]{}

const panicProductGeneratorNil = "weight: NewProductGenerator: component generators must be non-nil"

// Product is the product semiring of W1 and W2: every operation applies
// to both components. R1 and R2 are the reverse types of the components,
// so a product reverses into Product[R1, W1, R2, W2].
//
// Type arguments cannot be inferred from the components alone:
//
//	weight.NewProduct[weight.Tropical, weight.Tropical, weight.LeftString, weight.RightString](a, b)
type Product[W1 semiring.Weight[W1, R1], R1 semiring.Weight[R1, W1], W2 semiring.Weight[W2, R2], R2 semiring.Weight[R2, W2]] struct {
	first  W1
	second W2
}

// NewProduct pairs a and b.
func NewProduct[W1 semiring.Weight[W1, R1], R1 semiring.Weight[R1, W1], W2 semiring.Weight[W2, R2], R2 semiring.Weight[R2, W2]](a W1, b W2) Product[W1, R1, W2, R2] {
	return Product[W1, R1, W2, R2]{first: a, second: b}
}

func (p Product[W1, R1, W2, R2]) pair(a W1, b W2) Product[W1, R1, W2, R2] {
	return Product[W1, R1, W2, R2]{first: a, second: b}
}

// First returns the first component.
func (p Product[W1, R1, W2, R2]) First() W1 { return p.first }

// Second returns the second component.
func (p Product[W1, R1, W2, R2]) Second() W2 { return p.second }

// Type joins the component types, e.g. "tropical_X_left_string".
func (Product[W1, R1, W2, R2]) Type() string {
	var a W1
	var b W2

	return a.Type() + productTypeJoin + b.Type()
}

// Zero pairs the component Zeros.
func (p Product[W1, R1, W2, R2]) Zero() Product[W1, R1, W2, R2] {
	var a W1
	var b W2

	return p.pair(a.Zero(), b.Zero())
}

// One pairs the component Ones.
func (p Product[W1, R1, W2, R2]) One() Product[W1, R1, W2, R2] {
	var a W1
	var b W2

	return p.pair(a.One(), b.One())
}

// NoWeight pairs the component sentinels.
func (p Product[W1, R1, W2, R2]) NoWeight() Product[W1, R1, W2, R2] {
	var a W1
	var b W2

	return p.pair(a.NoWeight(), b.NoWeight())
}

// Member requires both components to be members.
func (p Product[W1, R1, W2, R2]) Member() bool {
	return p.first.Member() && p.second.Member()
}

// Properties keeps the flags both components share. Path never survives:
// the minimum of pairs need not be either pair.
func (Product[W1, R1, W2, R2]) Properties() semiring.Properties {
	var a W1
	var b W2
	pa, pb := a.Properties(), b.Properties()

	return semiring.Properties{
		LeftSemiring:  pa.LeftSemiring && pb.LeftSemiring,
		RightSemiring: pa.RightSemiring && pb.RightSemiring,
		Commutative:   pa.Commutative && pb.Commutative,
		Idempotent:    pa.Idempotent && pb.Idempotent,
	}
}

func (p Product[W1, R1, W2, R2]) Plus(v Product[W1, R1, W2, R2]) Product[W1, R1, W2, R2] {
	return p.pair(p.first.Plus(v.first), p.second.Plus(v.second))
}

func (p Product[W1, R1, W2, R2]) Times(v Product[W1, R1, W2, R2]) Product[W1, R1, W2, R2] {
	return p.pair(p.first.Times(v.first), p.second.Times(v.second))
}

// Divide divides both components on the same side.
func (p Product[W1, R1, W2, R2]) Divide(v Product[W1, R1, W2, R2], typ semiring.DivideType) Product[W1, R1, W2, R2] {
	return p.pair(p.first.Divide(v.first, typ), p.second.Divide(v.second, typ))
}

// Reverse reverses both components.
func (p Product[W1, R1, W2, R2]) Reverse() Product[R1, W1, R2, W2] {
	return Product[R1, W1, R2, W2]{first: p.first.Reverse(), second: p.second.Reverse()}
}

func (p Product[W1, R1, W2, R2]) Equal(v Product[W1, R1, W2, R2]) bool {
	return p.first.Equal(v.first) && p.second.Equal(v.second)
}

func (p Product[W1, R1, W2, R2]) ApproxEqual(v Product[W1, R1, W2, R2], delta float64) bool {
	return p.first.ApproxEqual(v.first, delta) && p.second.ApproxEqual(v.second, delta)
}

// Clone copies both components.
func (p Product[W1, R1, W2, R2]) Clone() Product[W1, R1, W2, R2] {
	return p.pair(semiring.Copy(p.first), semiring.Copy(p.second))
}

func (p Product[W1, R1, W2, R2]) String() string {
	return productOpen + p.first.String() + string(productSeparator) + p.second.String() + productClose
}

// Parse decodes "(first,second)". Components may be products themselves.
func (p Product[W1, R1, W2, R2]) Parse(s string) (Product[W1, R1, W2, R2], error) {
	var zero Product[W1, R1, W2, R2]
	inner, ok := strings.CutPrefix(s, productOpen)
	if ok {
		inner, ok = strings.CutSuffix(inner, productClose)
	}
	at := topLevelSeparator(inner)
	if !ok || at < 0 {
		return zero, fmt.Errorf("%w: product %q", ErrParse, s)
	}
	a, err := p.first.Parse(inner[:at])
	if err != nil {
		return zero, err
	}
	b, err := p.second.Parse(inner[at+1:])
	if err != nil {
		return zero, err
	}

	return p.pair(a, b), nil
}

// topLevelSeparator returns the index of the first separator outside any
// parentheses, or -1.
func topLevelSeparator(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case productSeparator:
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// Write encodes the first component, then the second.
func (p Product[W1, R1, W2, R2]) Write(out io.Writer) error {
	if err := p.first.Write(out); err != nil {
		return err
	}

	return p.second.Write(out)
}

// Read decodes a value written by Write.
func (p Product[W1, R1, W2, R2]) Read(in io.Reader) (Product[W1, R1, W2, R2], error) {
	var zero Product[W1, R1, W2, R2]
	a, err := p.first.Read(in)
	if err != nil {
		return zero, err
	}
	b, err := p.second.Read(in)
	if err != nil {
		return zero, err
	}

	return p.pair(a, b), nil
}

// ProductGenerator draws each component from its own generator.
// Not goroutine-safe.
type ProductGenerator[W1 semiring.Weight[W1, R1], R1 semiring.Weight[R1, W1], W2 semiring.Weight[W2, R2], R2 semiring.Weight[R2, W2]] struct {
	first  semiring.Generator[W1]
	second semiring.Generator[W2]
}

// NewProductGenerator combines two component generators. Give them
// independent random streams (semiring.SplitRand) so the components do
// not correlate.
func NewProductGenerator[W1 semiring.Weight[W1, R1], R1 semiring.Weight[R1, W1], W2 semiring.Weight[W2, R2], R2 semiring.Weight[R2, W2]](first semiring.Generator[W1], second semiring.Generator[W2]) *ProductGenerator[W1, R1, W2, R2] {
	if first == nil || second == nil {
		panic(panicProductGeneratorNil)
	}

	return &ProductGenerator[W1, R1, W2, R2]{first: first, second: second}
}

// Generate draws one weight.
func (g *ProductGenerator[W1, R1, W2, R2]) Generate() Product[W1, R1, W2, R2] {
	return Product[W1, R1, W2, R2]{first: g.first.Generate(), second: g.second.Generate()}
}
