// Package fst provides a small mutable weighted automaton, Vector, together
// with topological sorting and a YAML text format.
//
// States are dense integers 0..NumStates()-1. Each state has a final weight
// (Zero for non-final states) and an ordered list of arcs. The weight type
// is any W satisfying Weight[W]; the semirings in package weight all do.
//
// TopSort renumbers the states of an acyclic automaton so that every arc
// goes from a lower to a higher state ID. A cyclic automaton is reported
// and left as it was.
//
// Text format:
//
//	weight_type: tropical
//	start: 0
//	states:
//	  - arcs:
//	      - {ilabel: 1, olabel: 1, weight: "0.5", next: 1}
//	  - final: "0"
//
// The position in states is the state ID. An absent final weight means
// Zero; an absent arc weight means One.
package fst
