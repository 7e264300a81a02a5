// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense N-dimensional float32 tensors.
//
// # Overview
//
// A Tensor stores its elements in a flat, row-major buffer. This package provides:
//   - Shape and index types with row-major offset mapping
//   - Bounds-checked flat and multi-index element access
//   - Shape-gated elementwise Add and Sub (no implicit broadcasting)
//   - Explicit Broadcast of a size-1 dimension
//   - Optional display labels and fixed-size text rendering
//
// # Basic Usage
//
//	import "github.com/born-ml/dense/tensor"
//
//	func main() {
//	    t, err := tensor.Create(tensor.NewShape(32, 100, 20, 30, 12))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = t.EntrySet(tensor.NewIndex(0, 99, 0, 2, 0), 21)
//
//	    off, _ := t.Offset(tensor.NewIndex(0, 99, 0, 2, 0)) // 712824
//	    v, _ := t.Get(off)                                 // 21
//	}
//
// # Offsets and Strides
//
// For shape (d0, ..., dn-1) the stride of dimension i is the product of
// d(i+1) through dn-1, so the last dimension has stride 1. A multi-index maps
// to the offset sum(idx[i] * stride[i]). Strides are computed on the first
// multi-index access and cached. A scalar (empty shape) has one element at
// offset 0.
//
// # Errors
//
// Operations never panic on bad input. Failures match one of the package
// sentinels with errors.Is:
//
//	_, err := tensor.Add(a, b)
//	if errors.Is(err, tensor.ErrShapeMismatch) {
//	    var mismatch *tensor.ShapeMismatchError
//	    errors.As(err, &mismatch)
//	    fmt.Println(mismatch.Expected, mismatch.Got)
//	}
//
// # Broadcasting
//
// Add and Sub require identical shapes. To combine a column with a matrix,
// expand it first:
//
//	col, _ := tensor.FromSlice([]float32{1, 2}, tensor.NewShape(2, 1))
//	wide, _ := tensor.Broadcast(col, 1, 3) // shape [2, 3], data [1, 1, 1, 2, 2, 2]
//
// # Thread Safety
//
// Tensors are not safe for concurrent mutation. Concurrent reads are safe,
// except String, which reuses the tensor's render buffer.
package tensor
