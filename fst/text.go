package fst

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type textHeader struct {
	WeightType string `yaml:"weight_type"`
}

type textFst struct {
	WeightType string      `yaml:"weight_type"`
	Start      *StateID    `yaml:"start,omitempty"`
	States     []textState `yaml:"states"`
}

type textState struct {
	Final string    `yaml:"final,omitempty"`
	Arcs  []textArc `yaml:"arcs,omitempty"`
}

type textArc struct {
	ILabel Label   `yaml:"ilabel"`
	OLabel Label   `yaml:"olabel"`
	Weight string  `yaml:"weight,omitempty"`
	Next   StateID `yaml:"next"`
}

// PeekWeightType returns the weight_type header of a text automaton
// without decoding the rest.
func PeekWeightType(data []byte) (string, error) {
	var h textHeader
	if err := yaml.Unmarshal(data, &h); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if h.WeightType == "" {
		return "", fmt.Errorf("%w: missing weight_type", ErrBadFormat)
	}

	return h.WeightType, nil
}

// Read decodes a text automaton whose weight_type must match W.
func Read[W Weight[W]](r io.Reader) (*Vector[W], error) {
	// 1. Decode the document.
	var doc textFst
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	var w W
	if doc.WeightType != w.Type() {
		return nil, fmt.Errorf("%w: file has %q, want %q", ErrWeightType, doc.WeightType, w.Type())
	}

	// 2. Create every state first so arcs may point forward.
	v := NewVector[W](WithStateCapacity(len(doc.States)))
	for range doc.States {
		v.AddState()
	}

	// 3. Fill in finals and arcs.
	for i, st := range doc.States {
		s := StateID(i)
		if st.Final != "" {
			fw, err := w.Parse(st.Final)
			if err != nil {
				return nil, fmt.Errorf("%w: state %d final: %v", ErrBadFormat, i, err)
			}
			_ = v.SetFinal(s, fw)
		}
		for j, a := range st.Arcs {
			aw := w.One()
			if a.Weight != "" {
				var err error
				if aw, err = w.Parse(a.Weight); err != nil {
					return nil, fmt.Errorf("%w: state %d arc %d: %v", ErrBadFormat, i, j, err)
				}
			}
			arc := Arc[W]{ILabel: a.ILabel, OLabel: a.OLabel, Weight: aw, NextState: a.Next}
			if err := v.AddArc(s, arc); err != nil {
				return nil, fmt.Errorf("%w: state %d arc %d: %v", ErrBadFormat, i, j, err)
			}
		}
	}

	// 4. Start state.
	if doc.Start != nil {
		if err := v.SetStart(*doc.Start); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
	}

	return v, nil
}

// ReadBytes is Read over an in-memory document.
func ReadBytes[W Weight[W]](data []byte) (*Vector[W], error) {
	return Read[W](bytes.NewReader(data))
}

// Write encodes v in the text format.
func (v *Vector[W]) Write(out io.Writer) error {
	v.mu.RLock()
	var zero W
	doc := textFst{WeightType: zero.Type(), States: make([]textState, len(v.states))}
	if v.start != NoStateID {
		start := v.start
		doc.Start = &start
	}
	for i, st := range v.states {
		ts := textState{}
		if !st.final.Equal(zero.Zero()) {
			ts.Final = st.final.String()
		}
		for _, a := range st.arcs {
			ta := textArc{ILabel: a.ILabel, OLabel: a.OLabel, Next: a.NextState}
			if !a.Weight.Equal(zero.One()) {
				ta.Weight = a.Weight.String()
			}
			ts.Arcs = append(ts.Arcs, ta)
		}
		doc.States[i] = ts
	}
	v.mu.RUnlock()

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("fst: write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("fst: write: %w", err)
	}

	return nil
}
