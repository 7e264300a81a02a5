// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/dense/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
// An empty shape describes a scalar.
type Shape = tensor.Shape

// Index is a multi-index: one coordinate per dimension.
type Index = tensor.Index

// Tensor is a dense N-dimensional float32 tensor.
//
// Example:
//
//	x, _ := tensor.Create(tensor.NewShape(2, 3))
//	_ = x.EntrySet(tensor.NewIndex(1, 2), 4.5)
//	fmt.Println(x) // tensor(shape: [2, 3], data: [0, 0, 0, 0, 0, 4.5])
type Tensor = tensor.Tensor

// ShapeMismatchError reports an elementwise operation on tensors whose shapes differ.
type ShapeMismatchError = tensor.ShapeMismatchError

// BroadcastError reports a broadcast request that cannot be satisfied.
type BroadcastError = tensor.BroadcastError

// MaxEntries is the largest element count a tensor may have.
const MaxEntries = tensor.MaxEntries

// Errors returned by tensor operations.
var (
	ErrInvalidTensor      = tensor.ErrInvalidTensor
	ErrInvalidShape       = tensor.ErrInvalidShape
	ErrIndexArity         = tensor.ErrIndexArity
	ErrIndexOutOfRange    = tensor.ErrIndexOutOfRange
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrBroadcastDimension = tensor.ErrBroadcastDimension
)

// NewShape builds a Shape from its dimensions. The arguments are copied.
func NewShape(dims ...int) Shape {
	return tensor.NewShape(dims...)
}

// NewIndex builds an Index from its coordinates. The arguments are copied.
func NewIndex(coords ...int) Index {
	return tensor.NewIndex(coords...)
}

// Creation functions

// Create allocates a zero-filled tensor.
// Every dimension must be positive; an empty shape creates a scalar.
//
// Example:
//
//	x, err := tensor.Create(tensor.NewShape(2, 3))
func Create(shape Shape) (*Tensor, error) {
	return tensor.Create(shape)
}

// Scalar creates a rank-0 tensor holding v.
func Scalar(v float32) (*Tensor, error) {
	return tensor.Scalar(v)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.NewShape(2, 3))
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Like creates a zero-filled tensor with the same shape as t.
// A labeled t yields a result labeled "<label> (Copy)".
func Like(t *Tensor) (*Tensor, error) {
	return tensor.Like(t)
}

// Arithmetic

// ShapesMatch reports whether a and b have identical shapes.
func ShapesMatch(a, b *Tensor) bool {
	return tensor.ShapesMatch(a, b)
}

// Add returns a + b elementwise. The shapes must match exactly.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.NewShape(2, 2))
//	b, _ := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.NewShape(2, 2))
//	c, _ := tensor.Add(a, b) // [11, 22, 33, 44]
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Sub returns a - b elementwise. The shapes must match exactly.
func Sub(a, b *Tensor) (*Tensor, error) {
	return tensor.Sub(a, b)
}

// Broadcast expands dimension dim of t, which must have size 1, to size n.
//
// Example:
//
//	col, _ := tensor.FromSlice([]float32{1, 2}, tensor.NewShape(2, 1))
//	wide, _ := tensor.Broadcast(col, 1, 3) // [1, 1, 1, 2, 2, 2]
func Broadcast(t *Tensor, dim, n int) (*Tensor, error) {
	return tensor.Broadcast(t, dim, n)
}
