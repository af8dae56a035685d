package weighttest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrViolation matches every *Violation via errors.Is.
var ErrViolation = errors.New("weighttest: law violated")

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("weighttest: unknown mode")

// Group names a family of laws.
type Group string

// Law groups, in the order they are checked.
const (
	GroupSemiring Group = "semiring"
	GroupDivision Group = "division"
	GroupReverse  Group = "reverse"
	GroupEquality Group = "equality"
	GroupIO       Group = "io"
	GroupCopy     Group = "copy"
)

// Violation describes one broken law.
type Violation struct {
	Group     Group
	Law       string
	Condition string // the condition that evaluated false
	Iteration int    // zero-based
	Type      string // weight type name
	Operands  []string
	Cause     error // set when an I/O step failed outright
}

func (v *Violation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "weighttest: %s: %s/%s violated at iteration %d: %s",
		v.Type, v.Group, v.Law, v.Iteration, v.Condition)
	if len(v.Operands) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(v.Operands, ", "))
	}
	if v.Cause != nil {
		fmt.Fprintf(&b, ": %v", v.Cause)
	}

	return b.String()
}

// Unwrap exposes ErrViolation and, when present, the underlying cause.
func (v *Violation) Unwrap() []error {
	if v.Cause != nil {
		return []error{ErrViolation, v.Cause}
	}

	return []error{ErrViolation}
}
