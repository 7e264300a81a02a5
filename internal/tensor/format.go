package tensor

import (
	"strconv"
	"strings"
)

const truncationMarker = ", ...]"

// renderShape writes "[d0, d1, ...]" into the fixed shape buffer, ending
// with ", ...]" when the dimensions do not all fit.
func (t *Tensor) renderShape() {
	b := t.dimBuf
	b.Reset()
	limit := b.Cap() - len(truncationMarker)

	_ = b.WriteByte('[')
	var piece []byte
	for i, dim := range t.shape {
		piece = piece[:0]
		if i > 0 {
			piece = append(piece, ", "...)
		}
		piece = strconv.AppendInt(piece, int64(dim), 10)
		if b.Len()+len(piece) > limit {
			_, _ = b.WriteString(truncationMarker)
			return
		}
		_, _ = b.Write(piece)
	}
	_ = b.WriteByte(']')
}

// renderData writes "[v0, v1, ...]" into the fixed data buffer, ending with
// ", ...]" when the elements do not all fit.
func (t *Tensor) renderData() string {
	b := t.dataBuf
	b.Reset()
	limit := b.Cap() - len(truncationMarker)

	_ = b.WriteByte('[')
	var piece []byte
	for i, v := range t.data {
		piece = piece[:0]
		if i > 0 {
			piece = append(piece, ", "...)
		}
		piece = strconv.AppendFloat(piece, float64(v), 'g', -1, 32)
		if b.Len()+len(piece) > limit {
			_, _ = b.WriteString(truncationMarker)
			return b.String()
		}
		_, _ = b.Write(piece)
	}
	_ = b.WriteByte(']')
	return b.String()
}

// ShapeString returns the shape rendered at creation, e.g. "[32, 100, 20]".
func (t *Tensor) ShapeString() string {
	if !t.Valid() {
		return "null"
	}
	return t.dimBuf.String()
}

// String renders the tensor as
//
//	tensor(name: "weights", shape: [2, 2], data: [1, 2, 3, 4])
//
// omitting the name when the tensor is unlabeled. Invalid tensors render as "null".
// String reuses the tensor's data buffer and must not be called concurrently.
func (t *Tensor) String() string {
	if !t.Valid() {
		return "null"
	}
	var sb strings.Builder
	sb.WriteString("tensor(")
	if label, ok := t.Label(); ok {
		sb.WriteString("name: ")
		sb.WriteString(strconv.Quote(label))
		sb.WriteString(", ")
	}
	sb.WriteString("shape: ")
	sb.WriteString(t.ShapeString())
	sb.WriteString(", data: ")
	sb.WriteString(t.renderData())
	sb.WriteByte(')')
	return sb.String()
}
