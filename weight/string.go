package weight

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/wfst/semiring"
)

// Label is a symbol of a string weight. Positive values are ordinary
// symbols; negative values are reserved.
type Label int32

// Reserved labels.
const (
	// LabelInfinity is the single label of the Zero string.
	LabelInfinity Label = -1
	// LabelBad is the single label of the NoWeight string.
	LabelBad Label = -2
)

// Textual spellings of the string constants.
const (
	textStringZero = "Infinity"
	textStringOne  = "Epsilon"
	textStringBad  = "BadString"
	labelSeparator = "_"
)

// LeftString is the left string semiring: Plus is the longest common prefix,
// Times is concatenation. Only left division is defined.
type LeftString struct {
	labels []Label
}

// RightString is the right string semiring: Plus is the longest common
// suffix, Times is concatenation. Only right division is defined.
type RightString struct {
	labels []Label
}

var (
	_ semiring.Weight[LeftString, RightString] = LeftString{}
	_ semiring.Weight[RightString, LeftString] = RightString{}
)

// NewLeftString returns the left string weight spelling labels.
func NewLeftString(labels ...Label) LeftString {
	return LeftString{labels: slices.Clone(labels)}
}

// NewRightString returns the right string weight spelling labels.
func NewRightString(labels ...Label) RightString {
	return RightString{labels: slices.Clone(labels)}
}

// ---------- label sequence helpers ----------

func isZeroSeq(s []Label) bool { return len(s) == 1 && s[0] == LabelInfinity }
func isBadSeq(s []Label) bool  { return len(s) == 1 && s[0] == LabelBad }

var (
	zeroSeq = []Label{LabelInfinity}
	badSeq  = []Label{LabelBad}
)

// commonPrefix returns a fresh copy of the longest common prefix.
func commonPrefix(a, b []Label) []Label {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return slices.Clone(a[:n])
}

// commonSuffix returns a fresh copy of the longest common suffix.
func commonSuffix(a, b []Label) []Label {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}

	return slices.Clone(a[len(a)-n:])
}

func concat(a, b []Label) []Label {
	out := make([]Label, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

func reversed(a []Label) []Label {
	out := slices.Clone(a)
	slices.Reverse(out)

	return out
}

func formatLabels(s []Label) string {
	switch {
	case isZeroSeq(s):
		return textStringZero
	case isBadSeq(s):
		return textStringBad
	case len(s) == 0:
		return textStringOne
	}
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = strconv.FormatInt(int64(l), 10)
	}

	return strings.Join(parts, labelSeparator)
}

func parseLabels(text string) ([]Label, error) {
	switch text {
	case textStringZero:
		return slices.Clone(zeroSeq), nil
	case textStringBad:
		return slices.Clone(badSeq), nil
	case textStringOne:
		return nil, nil
	}
	parts := strings.Split(text, labelSeparator)
	out := make([]Label, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: label %q in %q", ErrParse, p, text)
		}
		out[i] = Label(v)
	}

	return out, nil
}

// ---------- LeftString ----------

// Labels returns a copy of the label sequence.
func (w LeftString) Labels() []Label { return slices.Clone(w.labels) }

// Type returns "left_string".
func (LeftString) Type() string { return "left_string" }

// Zero returns the Infinity string.
func (LeftString) Zero() LeftString { return LeftString{labels: zeroSeq} }

// One returns the empty string.
func (LeftString) One() LeftString { return LeftString{} }

// NoWeight returns the BadString sentinel.
func (LeftString) NoWeight() LeftString { return LeftString{labels: badSeq} }

// Member rejects only the BadString sentinel.
func (w LeftString) Member() bool { return !isBadSeq(w.labels) }

// Properties: left semiring, idempotent.
func (LeftString) Properties() semiring.Properties {
	return semiring.Properties{LeftSemiring: true, Idempotent: true}
}

// Plus returns the longest common prefix; Zero is the identity.
func (w LeftString) Plus(v LeftString) LeftString {
	switch {
	case !w.Member() || !v.Member():
		return w.NoWeight()
	case isZeroSeq(w.labels):
		return v
	case isZeroSeq(v.labels):
		return w
	}

	return LeftString{labels: commonPrefix(w.labels, v.labels)}
}

// Times concatenates; Zero annihilates.
func (w LeftString) Times(v LeftString) LeftString {
	switch {
	case !w.Member() || !v.Member():
		return w.NoWeight()
	case isZeroSeq(w.labels) || isZeroSeq(v.labels):
		return w.Zero()
	}

	return LeftString{labels: concat(w.labels, v.labels)}
}

// Divide strips v from the front of w. Only DivideLeft is defined, and only
// when v is a prefix of w.
func (w LeftString) Divide(v LeftString, typ semiring.DivideType) LeftString {
	switch {
	case typ != semiring.DivideLeft:
		return w.NoWeight()
	case !w.Member() || !v.Member() || isZeroSeq(v.labels):
		return w.NoWeight()
	case isZeroSeq(w.labels):
		return w.Zero()
	case len(v.labels) > len(w.labels) || !slices.Equal(w.labels[:len(v.labels)], v.labels):
		return w.NoWeight()
	}

	return LeftString{labels: slices.Clone(w.labels[len(v.labels):])}
}

// Reverse returns the reversed sequence as a RightString.
func (w LeftString) Reverse() RightString { return RightString{labels: reversed(w.labels)} }

// Equal compares label sequences.
func (w LeftString) Equal(v LeftString) bool { return slices.Equal(w.labels, v.labels) }

// ApproxEqual is Equal: string weights are exact.
func (w LeftString) ApproxEqual(v LeftString, _ float64) bool { return w.Equal(v) }

// Clone returns an independent copy.
func (w LeftString) Clone() LeftString { return LeftString{labels: slices.Clone(w.labels)} }

func (w LeftString) String() string { return formatLabels(w.labels) }

// Parse decodes the textual form.
func (LeftString) Parse(s string) (LeftString, error) {
	labels, err := parseLabels(s)
	return LeftString{labels: labels}, err
}

func (w LeftString) Write(out io.Writer) error { return writeLabels(out, w.labels) }

// Read decodes a value written by Write.
func (LeftString) Read(in io.Reader) (LeftString, error) {
	labels, err := readLabels(in)
	return LeftString{labels: labels}, err
}

// ---------- RightString ----------

// Labels returns a copy of the label sequence.
func (w RightString) Labels() []Label { return slices.Clone(w.labels) }

// Type returns "right_string".
func (RightString) Type() string { return "right_string" }

// Zero returns the Infinity string.
func (RightString) Zero() RightString { return RightString{labels: zeroSeq} }

// One returns the empty string.
func (RightString) One() RightString { return RightString{} }

// NoWeight returns the BadString sentinel.
func (RightString) NoWeight() RightString { return RightString{labels: badSeq} }

// Member rejects only the BadString sentinel.
func (w RightString) Member() bool { return !isBadSeq(w.labels) }

// Properties: right semiring, idempotent.
func (RightString) Properties() semiring.Properties {
	return semiring.Properties{RightSemiring: true, Idempotent: true}
}

// Plus returns the longest common suffix; Zero is the identity.
func (w RightString) Plus(v RightString) RightString {
	switch {
	case !w.Member() || !v.Member():
		return w.NoWeight()
	case isZeroSeq(w.labels):
		return v
	case isZeroSeq(v.labels):
		return w
	}

	return RightString{labels: commonSuffix(w.labels, v.labels)}
}

// Times concatenates; Zero annihilates.
func (w RightString) Times(v RightString) RightString {
	switch {
	case !w.Member() || !v.Member():
		return w.NoWeight()
	case isZeroSeq(w.labels) || isZeroSeq(v.labels):
		return w.Zero()
	}

	return RightString{labels: concat(w.labels, v.labels)}
}

// Divide strips v from the back of w. Only DivideRight is defined, and only
// when v is a suffix of w.
func (w RightString) Divide(v RightString, typ semiring.DivideType) RightString {
	switch {
	case typ != semiring.DivideRight:
		return w.NoWeight()
	case !w.Member() || !v.Member() || isZeroSeq(v.labels):
		return w.NoWeight()
	case isZeroSeq(w.labels):
		return w.Zero()
	case len(v.labels) > len(w.labels) || !slices.Equal(w.labels[len(w.labels)-len(v.labels):], v.labels):
		return w.NoWeight()
	}

	return RightString{labels: slices.Clone(w.labels[:len(w.labels)-len(v.labels)])}
}

// Reverse returns the reversed sequence as a LeftString.
func (w RightString) Reverse() LeftString { return LeftString{labels: reversed(w.labels)} }

// Equal compares label sequences.
func (w RightString) Equal(v RightString) bool { return slices.Equal(w.labels, v.labels) }

// ApproxEqual is Equal: string weights are exact.
func (w RightString) ApproxEqual(v RightString, _ float64) bool { return w.Equal(v) }

// Clone returns an independent copy.
func (w RightString) Clone() RightString { return RightString{labels: slices.Clone(w.labels)} }

func (w RightString) String() string { return formatLabels(w.labels) }

// Parse decodes the textual form.
func (RightString) Parse(s string) (RightString, error) {
	labels, err := parseLabels(s)
	return RightString{labels: labels}, err
}

func (w RightString) Write(out io.Writer) error { return writeLabels(out, w.labels) }

// Read decodes a value written by Write.
func (RightString) Read(in io.Reader) (RightString, error) {
	labels, err := readLabels(in)
	return RightString{labels: labels}, err
}
