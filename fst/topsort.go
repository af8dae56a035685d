package fst

import "context"

// TopSortOption configures optional behavior for TopSort.
type TopSortOption func(*topSortOptions)

type topSortOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultTopSortOptions() topSortOptions {
	return topSortOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil context has no
// effect.
func WithCancelContext(ctx context.Context) TopSortOption {
	return func(o *topSortOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topSorter holds the traversal state of one TopSort call.
type topSorter[W Weight[W]] struct {
	fst     *Vector[W]
	opts    topSortOptions
	state   []int     // white, gray or black per state
	finish  []StateID // post-order
	acyclic bool
}

// TopSort renumbers the states of v in topological order, so that every
// arc leads from a lower to a higher ID, and reports true. If v has a
// cycle it is left unchanged and TopSort reports false.
//
// The depth-first search starts at the start state and then covers every
// state not yet reached, in ID order, so unreachable states are sorted too.
//
// Complexity: O(V + E) time, O(V) memory.
func TopSort[W Weight[W]](v *Vector[W], options ...TopSortOption) (bool, error) {
	// 1. Validate input.
	if v == nil {
		return false, ErrNilFst
	}
	opts := defaultTopSortOptions()
	for _, opt := range options {
		opt(&opts)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// 2. Depth-first search from the start state, then from every other root.
	n := len(v.states)
	t := &topSorter[W]{
		fst:     v,
		opts:    opts,
		state:   make([]int, n),
		finish:  make([]StateID, 0, n),
		acyclic: true,
	}
	if v.start != NoStateID {
		if err := t.visit(v.start); err != nil {
			return false, err
		}
	}
	for s := 0; s < n; s++ {
		if t.state[s] == white {
			if err := t.visit(StateID(s)); err != nil {
				return false, err
			}
		}
	}
	if !t.acyclic {
		return false, nil
	}

	// 3. Reverse post-order gives the new IDs.
	order := make([]StateID, n)
	for i, s := range t.finish {
		order[s] = StateID(n - 1 - i)
	}
	if err := v.stateSortLocked(order); err != nil {
		return false, err
	}

	return true, nil
}

// visit explores s, recording back edges and the finish order.
func (t *topSorter[W]) visit(s StateID) error {
	// 1. Cancellation check at entry.
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Mark as in progress.
	t.state[s] = gray
	// 3. Explore successors; a gray successor closes a cycle.
	for _, arc := range t.fst.states[s].arcs {
		switch t.state[arc.NextState] {
		case gray:
			t.acyclic = false
		case white:
			if err := t.visit(arc.NextState); err != nil {
				return err
			}
		}
	}
	// 4. Done with s.
	t.state[s] = black
	t.finish = append(t.finish, s)

	return nil
}
