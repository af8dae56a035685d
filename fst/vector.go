package fst

import (
	"fmt"
	"slices"
	"sync"
)

// Option configures a Vector before creation.
type Option func(*vectorOptions)

type vectorOptions struct {
	capacity int
}

// WithStateCapacity preallocates room for n states.
func WithStateCapacity(n int) Option {
	return func(o *vectorOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

type vectorState[W any] struct {
	final W
	arcs  []Arc[W]
}

// Vector is a mutable automaton stored as a slice of states.
// All methods are safe for concurrent use.
type Vector[W Weight[W]] struct {
	mu     sync.RWMutex
	start  StateID
	states []*vectorState[W]
}

// NewVector returns an empty automaton with no start state.
// Complexity: O(1).
func NewVector[W Weight[W]](opts ...Option) *Vector[W] {
	var o vectorOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Vector[W]{start: NoStateID, states: make([]*vectorState[W], 0, o.capacity)}
}

// AddState appends a non-final state and returns its ID.
func (v *Vector[W]) AddState() StateID {
	v.mu.Lock()
	defer v.mu.Unlock()
	var w W
	v.states = append(v.states, &vectorState[W]{final: w.Zero()})

	return StateID(len(v.states) - 1)
}

// NumStates returns the number of states.
func (v *Vector[W]) NumStates() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.states)
}

// validLocked reports whether s names a state. Caller holds mu.
func (v *Vector[W]) validLocked(s StateID) bool {
	return s >= 0 && int(s) < len(v.states)
}

// Start returns the start state, or NoStateID.
func (v *Vector[W]) Start() StateID {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.start
}

// SetStart makes s the start state.
func (v *Vector[W]) SetStart(s StateID) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.validLocked(s) {
		return fmt.Errorf("SetStart(%d): %w", s, ErrStateNotFound)
	}
	v.start = s

	return nil
}

// Final returns the final weight of s (Zero when s is not final).
func (v *Vector[W]) Final(s StateID) (W, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.validLocked(s) {
		var zero W
		return zero, fmt.Errorf("Final(%d): %w", s, ErrStateNotFound)
	}

	return v.states[s].final, nil
}

// SetFinal sets the final weight of s; Zero makes s non-final.
func (v *Vector[W]) SetFinal(s StateID, w W) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.validLocked(s) {
		return fmt.Errorf("SetFinal(%d): %w", s, ErrStateNotFound)
	}
	v.states[s].final = w

	return nil
}

// AddArc appends arc to the arcs leaving s. Both s and arc.NextState must
// exist.
func (v *Vector[W]) AddArc(s StateID, arc Arc[W]) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.validLocked(s) {
		return fmt.Errorf("AddArc(%d): %w", s, ErrStateNotFound)
	}
	if !v.validLocked(arc.NextState) {
		return fmt.Errorf("AddArc(%d -> %d): %w", s, arc.NextState, ErrStateNotFound)
	}
	v.states[s].arcs = append(v.states[s].arcs, arc)

	return nil
}

// Arcs returns a copy of the arcs leaving s, in insertion order.
func (v *Vector[W]) Arcs(s StateID) ([]Arc[W], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.validLocked(s) {
		return nil, fmt.Errorf("Arcs(%d): %w", s, ErrStateNotFound)
	}

	return slices.Clone(v.states[s].arcs), nil
}

// NumArcs returns the number of arcs leaving s.
func (v *Vector[W]) NumArcs(s StateID) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.validLocked(s) {
		return 0, fmt.Errorf("NumArcs(%d): %w", s, ErrStateNotFound)
	}

	return len(v.states[s].arcs), nil
}

// Clone returns a deep copy. Weights are copied by value.
// Complexity: O(V + E).
func (v *Vector[W]) Clone() *Vector[W] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	clone := &Vector[W]{start: v.start, states: make([]*vectorState[W], len(v.states))}
	for i, st := range v.states {
		clone.states[i] = &vectorState[W]{final: st.final, arcs: slices.Clone(st.arcs)}
	}

	return clone
}

// StateSort renumbers states: state s becomes order[s]. order must be a
// permutation of 0..NumStates()-1.
// Complexity: O(V + E).
func (v *Vector[W]) StateSort(order []StateID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.stateSortLocked(order)
}

func (v *Vector[W]) stateSortLocked(order []StateID) error {
	// 1. Validate the permutation.
	n := len(v.states)
	if len(order) != n {
		return fmt.Errorf("StateSort: %d entries for %d states: %w", len(order), n, ErrBadOrder)
	}
	seen := make([]bool, n)
	for s, t := range order {
		if t < 0 || int(t) >= n || seen[t] {
			return fmt.Errorf("StateSort: state %d -> %d: %w", s, t, ErrBadOrder)
		}
		seen[t] = true
	}
	// 2. Move states and rewrite arc targets.
	sorted := make([]*vectorState[W], n)
	for s, st := range v.states {
		for i := range st.arcs {
			st.arcs[i].NextState = order[st.arcs[i].NextState]
		}
		sorted[order[s]] = st
	}
	v.states = sorted
	// 3. Follow the start state.
	if v.start != NoStateID {
		v.start = order[v.start]
	}

	return nil
}
