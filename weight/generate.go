package weight

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/wfst/semiring"
)

// Generator defaults. Sentinel probabilities are per draw; the remaining mass
// goes to ordinary values.
const (
	// DefaultZeroProbability is the chance of drawing Zero.
	DefaultZeroProbability = 0.1

	// DefaultOneProbability is the chance of drawing One.
	DefaultOneProbability = 0.1

	// DefaultNoWeightProbability is the chance of drawing NoWeight. It is 0
	// because a NoWeight sample cannot satisfy the closure law.
	DefaultNoWeightProbability = 0.0

	// DefaultRangeLow and DefaultRangeHigh bound integer-valued float draws
	// to [low, high). Integer values keep Times exact.
	DefaultRangeLow  = 0
	DefaultRangeHigh = 5

	// DefaultMaxStringLength bounds string draws (inclusive).
	DefaultMaxStringLength = 5

	// DefaultAlphabetSize: string labels are drawn from 1..DefaultAlphabetSize.
	DefaultAlphabetSize = 5
)

const (
	panicProbabilityInvalid = "weight: probability must be finite and in [0,1]"
	panicProbabilityMass    = "weight: sentinel probabilities sum above 1"
	panicRangeInvalid       = "weight: WithRange: require low < high"
	panicMaxLengthInvalid   = "weight: WithMaxLength: length must be >= 0"
	panicAlphabetInvalid    = "weight: WithAlphabetSize: size must be >= 1"
	panicRandNil            = "weight: WithRand: rng must be non-nil"
)

// GenOption configures a generator. Constructors panic on nonsensical
// values (programmer error).
type GenOption func(*genOptions)

type genOptions struct {
	seed      int64
	rng       *rand.Rand
	zeroP     float64
	oneP      float64
	noWeightP float64
	low       int
	high      int
	maxLen    int
	alphabet  int
}

func defaultGenOptions() genOptions {
	return genOptions{
		zeroP:     DefaultZeroProbability,
		oneP:      DefaultOneProbability,
		noWeightP: DefaultNoWeightProbability,
		low:       DefaultRangeLow,
		high:      DefaultRangeHigh,
		maxLen:    DefaultMaxStringLength,
		alphabet:  DefaultAlphabetSize,
	}
}

// gatherGenOptions applies opts over the defaults and resolves the source.
func gatherGenOptions(opts []GenOption) genOptions {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.zeroP+o.oneP+o.noWeightP > 1 {
		panic(panicProbabilityMass)
	}
	if o.rng == nil {
		o.rng = semiring.NewRand(o.seed)
	}

	return o
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// WithSeed seeds the generator (0 selects semiring.DefaultSeed).
func WithSeed(seed int64) GenOption {
	return func(o *genOptions) { o.seed = seed }
}

// WithRand uses rng directly; it takes precedence over WithSeed.
func WithRand(rng *rand.Rand) GenOption {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *genOptions) { o.rng = rng }
}

// WithZeroProbability sets the chance of drawing Zero.
func WithZeroProbability(p float64) GenOption {
	if !validProbability(p) {
		panic(panicProbabilityInvalid)
	}

	return func(o *genOptions) { o.zeroP = p }
}

// WithOneProbability sets the chance of drawing One.
func WithOneProbability(p float64) GenOption {
	if !validProbability(p) {
		panic(panicProbabilityInvalid)
	}

	return func(o *genOptions) { o.oneP = p }
}

// WithNoWeightProbability sets the chance of drawing NoWeight.
func WithNoWeightProbability(p float64) GenOption {
	if !validProbability(p) {
		panic(panicProbabilityInvalid)
	}

	return func(o *genOptions) { o.noWeightP = p }
}

// WithRange bounds integer-valued float draws to [low, high).
func WithRange(low, high int) GenOption {
	if low >= high {
		panic(panicRangeInvalid)
	}

	return func(o *genOptions) { o.low, o.high = low, high }
}

// WithMaxLength bounds the length of string draws.
func WithMaxLength(n int) GenOption {
	if n < 0 {
		panic(panicMaxLengthInvalid)
	}

	return func(o *genOptions) { o.maxLen = n }
}

// WithAlphabetSize sets the number of distinct labels in string draws.
func WithAlphabetSize(n int) GenOption {
	if n < 1 {
		panic(panicAlphabetInvalid)
	}

	return func(o *genOptions) { o.alphabet = n }
}

// draw kinds
const (
	drawValue = iota
	drawZero
	drawOne
	drawNoWeight
)

// pick decides which kind of value the next draw yields.
func (o *genOptions) pick() int {
	r := o.rng.Float64()
	switch {
	case r < o.noWeightP:
		return drawNoWeight
	case r < o.noWeightP+o.zeroP:
		return drawZero
	case r < o.noWeightP+o.zeroP+o.oneP:
		return drawOne
	}

	return drawValue
}

// floatWeight is satisfied by the float-backed weights of this package.
type floatWeight[W any] interface {
	~float64
	Zero() W
	One() W
	NoWeight() W
}

// FloatGenerator draws float-backed weights: sentinels with their configured
// probabilities, otherwise an integer value in [low, high).
// Not goroutine-safe.
type FloatGenerator[W floatWeight[W]] struct {
	opts genOptions
}

var _ semiring.Generator[Tropical] = (*FloatGenerator[Tropical])(nil)

// NewFloatGenerator returns a generator for W.
func NewFloatGenerator[W floatWeight[W]](opts ...GenOption) *FloatGenerator[W] {
	return &FloatGenerator[W]{opts: gatherGenOptions(opts)}
}

// Generate draws one weight.
func (g *FloatGenerator[W]) Generate() W {
	var w W
	switch g.opts.pick() {
	case drawNoWeight:
		return w.NoWeight()
	case drawZero:
		return w.Zero()
	case drawOne:
		return w.One()
	}

	return W(float64(g.opts.low + g.opts.rng.Intn(g.opts.high-g.opts.low)))
}

// StringGenerator draws string weights: sentinels with their configured
// probabilities, otherwise up to maxLen labels from 1..alphabet.
// Not goroutine-safe.
type StringGenerator[W any] struct {
	opts  genOptions
	build func([]Label) W
	zero  W
	one   W
	bad   W
}

// NewLeftStringGenerator returns a LeftString generator.
func NewLeftStringGenerator(opts ...GenOption) *StringGenerator[LeftString] {
	var w LeftString
	return &StringGenerator[LeftString]{
		opts:  gatherGenOptions(opts),
		build: func(l []Label) LeftString { return LeftString{labels: l} },
		zero:  w.Zero(),
		one:   w.One(),
		bad:   w.NoWeight(),
	}
}

// NewRightStringGenerator returns a RightString generator.
func NewRightStringGenerator(opts ...GenOption) *StringGenerator[RightString] {
	var w RightString
	return &StringGenerator[RightString]{
		opts:  gatherGenOptions(opts),
		build: func(l []Label) RightString { return RightString{labels: l} },
		zero:  w.Zero(),
		one:   w.One(),
		bad:   w.NoWeight(),
	}
}

// Generate draws one weight.
func (g *StringGenerator[W]) Generate() W {
	switch g.opts.pick() {
	case drawNoWeight:
		return g.bad
	case drawZero:
		return g.zero
	case drawOne:
		return g.one
	}
	n := g.opts.rng.Intn(g.opts.maxLen + 1)
	labels := make([]Label, n)
	for i := range labels {
		labels[i] = Label(1 + g.opts.rng.Intn(g.opts.alphabet))
	}

	return g.build(labels)
}
