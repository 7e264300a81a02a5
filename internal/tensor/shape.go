package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor.
// An empty shape describes a scalar.
type Shape []int

// Index is a multi-dimensional coordinate tuple, one entry per dimension.
type Index []int

// NewShape builds a shape from dimension sizes.
//
// Example:
//
//	s := tensor.NewShape(32, 100, 20, 30, 12)
func NewShape(dims ...int) Shape {
	return Shape(dims).Clone()
}

// NewIndex builds a coordinate tuple.
//
// Example:
//
//	idx := tensor.NewIndex(0, 99, 0, 2, 0)
func NewIndex(coords ...int) Index {
	idx := make(Index, len(coords))
	copy(idx, coords)
	return idx
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape as "[d0, d1, ...]".
func (s Shape) String() string {
	var sb strings.Builder
	sb.Grow(2 + 4*len(s))
	sb.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the index as "(i0, i1, ...)".
func (idx Index) String() string {
	parts := make([]string, len(idx))
	for i, c := range idx {
		parts[i] = strconv.Itoa(c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
