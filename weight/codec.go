package weight

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
)

// Textual spellings of the float sentinels.
const (
	textPosInf   = "Infinity"
	textNegInf   = "-Infinity"
	textBadFloat = "BadNumber"
)

// maxLabels bounds the label count accepted by readLabels so a corrupt
// stream cannot trigger a huge allocation.
const maxLabels = 1 << 20

// writeFloat encodes v as a protowire fixed64.
func writeFloat(w io.Writer, v float64) error {
	buf := protowire.AppendFixed64(make([]byte, 0, 8), math.Float64bits(v))
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("weight: write float: %w", err)
	}

	return nil
}

// readFloat decodes a value written by writeFloat.
func readFloat(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: float: %v", ErrDecode, err)
	}
	bits, n := protowire.ConsumeFixed64(buf[:])
	if n < 0 {
		return 0, fmt.Errorf("%w: float: %v", ErrDecode, protowire.ParseError(n))
	}

	return math.Float64frombits(bits), nil
}

// writeLabels encodes a count followed by each label, all fixed32.
func writeLabels(w io.Writer, labels []Label) error {
	buf := make([]byte, 0, 4*(len(labels)+1))
	buf = protowire.AppendFixed32(buf, uint32(len(labels)))
	for _, l := range labels {
		buf = protowire.AppendFixed32(buf, uint32(l))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("weight: write labels: %w", err)
	}

	return nil
}

// readLabels decodes a sequence written by writeLabels.
func readLabels(r io.Reader) ([]Label, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("%w: label count: %v", ErrDecode, err)
	}
	count, _ := protowire.ConsumeFixed32(head[:])
	if count > maxLabels {
		return nil, fmt.Errorf("%w: label count %d exceeds %d", ErrDecode, count, maxLabels)
	}
	body := make([]byte, 4*int(count))
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: labels: %v", ErrDecode, err)
	}
	labels := make([]Label, count)
	for i := range labels {
		v, n := protowire.ConsumeFixed32(body)
		if n < 0 {
			return nil, fmt.Errorf("%w: label %d: %v", ErrDecode, i, protowire.ParseError(n))
		}
		labels[i] = Label(int32(v))
		body = body[n:]
	}
	if err := checkLabels(labels); err != nil {
		return nil, err
	}

	return labels, nil
}

// checkLabels accepts the single-label sentinels and otherwise only
// positive labels, the same set parseLabels accepts.
func checkLabels(labels []Label) error {
	if isZeroSeq(labels) || isBadSeq(labels) {
		return nil
	}
	for i, l := range labels {
		if l <= 0 {
			return fmt.Errorf("%w: label %d is %d", ErrDecode, i, l)
		}
	}

	return nil
}

// formatFloat renders v in shortest round-trip form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return textBadFloat
	case math.IsInf(v, 1):
		return textPosInf
	case math.IsInf(v, -1):
		return textNegInf
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseFloat is the inverse of formatFloat.
func parseFloat(s string) (float64, error) {
	switch s {
	case textBadFloat:
		return math.NaN(), nil
	case textPosInf:
		return math.Inf(1), nil
	case textNegInf:
		return math.Inf(-1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}
