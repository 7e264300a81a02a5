package tensor

import "github.com/born-ml/dense/internal/parallel"

// ShapesMatch reports whether a and b have identical shapes: the same rank
// and the same size in every dimension, in order. Invalid tensors never match.
func ShapesMatch(a, b *Tensor) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return a.shape.Equal(b.shape)
}

// Add returns a new tensor holding a[i] + b[i] for every offset.
// The shapes must match exactly; no broadcasting is performed.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.NewShape(2, 2))
//	b, _ := tensor.FromSlice([]float32{10, 20, 30, 40}, tensor.NewShape(2, 2))
//	c, _ := tensor.Add(a, b) // [11, 22, 33, 44]
func Add(a, b *Tensor) (*Tensor, error) {
	return AddWith(parallel.DefaultConfig(), a, b)
}

// Sub returns a new tensor holding a[i] - b[i] for every offset.
// The shapes must match exactly; no broadcasting is performed.
func Sub(a, b *Tensor) (*Tensor, error) {
	return SubWith(parallel.DefaultConfig(), a, b)
}

// AddWith is Add with an explicit parallel execution configuration.
func AddWith(cfg parallel.Config, a, b *Tensor) (*Tensor, error) {
	return elementwise("add", cfg, a, b, func(dst, x, y []float32) {
		for i := range dst {
			dst[i] = x[i] + y[i]
		}
	})
}

// SubWith is Sub with an explicit parallel execution configuration.
func SubWith(cfg parallel.Config, a, b *Tensor) (*Tensor, error) {
	return elementwise("sub", cfg, a, b, func(dst, x, y []float32) {
		for i := range dst {
			dst[i] = x[i] - y[i]
		}
	})
}

// elementwise validates operands, allocates the result via Like(a) and runs
// kernel over disjoint offset ranges.
func elementwise(op string, cfg parallel.Config, a, b *Tensor, kernel func(dst, x, y []float32)) (*Tensor, error) {
	if !a.Valid() || !b.Valid() {
		return nil, ErrInvalidTensor
	}
	if !ShapesMatch(a, b) {
		return nil, &ShapeMismatchError{Op: op, Expected: a.shape.Clone(), Got: b.shape.Clone()}
	}

	result, err := Like(a)
	if err != nil {
		return nil, err
	}
	parallel.ForRange(result.entries, func(start, end int) {
		kernel(result.data[start:end], a.data[start:end], b.data[start:end])
	}, cfg)
	return result, nil
}
