package tensor

import (
	"fmt"
	"math"
	"sync"

	"github.com/born-ml/dense/internal/textbuf"
)

// Capacities of the fixed rendering buffers every tensor owns.
const (
	ShapeBufferSize = 512
	DataBufferSize  = 1024
)

// MaxEntries is the largest element count Create accepts (4 TiB of float32
// on 64-bit platforms). Larger shapes fail with ErrInvalidShape instead of
// reaching the allocator.
const MaxEntries = min(math.MaxInt/4, 1<<40)

// Tensor is a dense N-dimensional array of float32 values stored in a flat,
// row-major buffer.
//
// A Tensor exclusively owns its shape, stride cache, data and label. It is not
// safe for concurrent mutation; concurrent reads (including the first
// multi-index access that materializes the strides) are safe.
//
// Example:
//
//	t, _ := tensor.Create(tensor.NewShape(2, 3))
//	_ = t.EntrySet(tensor.NewIndex(1, 2), 4.5)
//	v, _ := t.EntryGet(tensor.NewIndex(1, 2)) // 4.5
type Tensor struct {
	shape   Shape
	entries int
	data    []float32

	stridesOnce sync.Once
	strides     []int // Lazily computed from shape, see Strides.

	label   *textbuf.Buffer // Optional display name
	dimBuf  *textbuf.Buffer // Rendered shape, fixed capacity
	dataBuf *textbuf.Buffer // Rendered data, fixed capacity
}

// Create allocates a zero-initialized tensor with the given shape.
// A nil or empty shape creates a scalar with a single entry.
func Create(shape Shape) (*Tensor, error) {
	entries, err := shapeEntries(shape)
	if err != nil {
		return nil, err
	}

	t := &Tensor{
		shape:   shape.Clone(),
		entries: entries,
		data:    make([]float32, entries),
		dimBuf:  textbuf.NewFixed(ShapeBufferSize),
		dataBuf: textbuf.NewFixed(DataBufferSize),
	}
	t.renderShape()
	return t, nil
}

// Scalar creates a rank-0 tensor holding v.
func Scalar(v float32) (*Tensor, error) {
	t, err := Create(nil)
	if err != nil {
		return nil, err
	}
	t.data[0] = v
	return t, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	entries, err := shapeEntries(shape)
	if err != nil {
		return nil, err
	}
	if entries != len(data) {
		return nil, fmt.Errorf("%w: shape %s requires %d elements, but got %d",
			ErrShapeMismatch, shape, entries, len(data))
	}

	t, err := Create(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Like creates a zero-initialized tensor with the same shape as t.
// If t is labeled, the result is labeled "<label> (Copy)". Data is not copied.
func Like(t *Tensor) (*Tensor, error) {
	return likeWithSuffix(t, " (Copy)")
}

func likeWithSuffix(t *Tensor, suffix string) (*Tensor, error) {
	if !t.Valid() {
		return nil, ErrInvalidTensor
	}
	out, err := Create(t.shape)
	if err != nil {
		return nil, err
	}
	if t.label != nil {
		out.label = t.label.Clone()
		_, _ = out.label.WriteString(suffix) // growable, cannot fail
	}
	return out, nil
}

// Valid reports whether t can be used. Nil and released tensors are invalid.
func (t *Tensor) Valid() bool {
	return t != nil && t.data != nil
}

// Release frees everything the tensor owns. The tensor is invalid afterwards.
// Calling Release more than once is safe.
func (t *Tensor) Release() {
	if t == nil {
		return
	}
	t.data = nil
	t.entries = 0
	t.shape = nil
	t.strides = nil
	t.label.Release()
	t.label = nil
	t.dimBuf.Release()
	t.dataBuf.Release()
}

// SetLabel attaches or replaces the tensor's display name.
// Labels do not take part in indexing, equality or arithmetic.
func (t *Tensor) SetLabel(label string) error {
	if !t.Valid() {
		return ErrInvalidTensor
	}
	t.label = textbuf.FromString(label)
	return nil
}

// Label returns the display name and whether one is set.
func (t *Tensor) Label() (string, bool) {
	if !t.Valid() || t.label == nil {
		return "", false
	}
	return t.label.String(), true
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	if !t.Valid() {
		return nil
	}
	return t.shape.Clone()
}

// Rank returns the number of dimensions (0 for scalars).
func (t *Tensor) Rank() int {
	if !t.Valid() {
		return 0
	}
	return len(t.shape)
}

// NumElements returns the number of entries.
func (t *Tensor) NumElements() int {
	if !t.Valid() {
		return 0
	}
	return t.entries
}

// IsScalar reports whether t has an empty shape.
func (t *Tensor) IsScalar() bool {
	return t.Valid() && len(t.shape) == 0
}

// Data returns a copy of the tensor's elements in row-major order.
func (t *Tensor) Data() []float32 {
	if !t.Valid() {
		return nil
	}
	out := make([]float32, t.entries)
	copy(out, t.data)
	return out
}

// shapeEntries validates shape and returns its element count.
func shapeEntries(shape Shape) (int, error) {
	if err := shape.Validate(); err != nil {
		return 0, err
	}
	entries, ok := checkedNumElements(shape)
	if !ok {
		return 0, fmt.Errorf("%w: %s exceeds %d entries", ErrInvalidShape, shape, MaxEntries)
	}
	return entries, nil
}

// checkedNumElements multiplies the dimensions of s, reporting counts above
// MaxEntries. Dimensions must already be positive.
func checkedNumElements(s Shape) (int, bool) {
	n := 1
	for _, dim := range s {
		if n > MaxEntries/dim {
			return 0, false
		}
		n *= dim
	}
	return n, true
}
