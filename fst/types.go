package fst

import (
	"errors"
	"fmt"
)

// Sentinel errors for automaton operations.
var (
	// ErrStateNotFound indicates a state ID outside 0..NumStates()-1.
	ErrStateNotFound = errors.New("fst: state not found")

	// ErrBadOrder indicates a StateSort order that is not a permutation.
	ErrBadOrder = errors.New("fst: order is not a permutation of the states")

	// ErrBadFormat indicates malformed text input.
	ErrBadFormat = errors.New("fst: bad text format")

	// ErrWeightType indicates text input written for another weight type.
	ErrWeightType = errors.New("fst: weight type mismatch")

	// ErrNilFst is returned when a nil *Vector is passed in.
	ErrNilFst = errors.New("fst: automaton is nil")
)

// StateID identifies a state.
type StateID int

// NoStateID marks the absence of a state, e.g. an unset start.
const NoStateID StateID = -1

// Label is an arc input or output symbol.
type Label int32

// Epsilon is the empty label.
const Epsilon Label = 0

// Weight is what the automaton needs from its weight type.
type Weight[W any] interface {
	fmt.Stringer
	Type() string
	Zero() W
	One() W
	Equal(W) bool
	Parse(string) (W, error)
}

// Arc is a transition to NextState reading ILabel and writing OLabel.
type Arc[W any] struct {
	ILabel    Label
	OLabel    Label
	Weight    W
	NextState StateID
}

// DFS visitation states.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)
