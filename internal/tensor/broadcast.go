package tensor

import (
	"context"

	"github.com/born-ml/dense/internal/parallel"
)

// cancelCheckInterval is how many output entries a broadcast range copies
// between context checks.
const cancelCheckInterval = 4096

// Broadcast expands dimension dim of t, which must have size 1, to size n by
// replicating the tensor's values along it.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float32{1, 2}, tensor.NewShape(2, 1))
//	b, _ := tensor.Broadcast(t, 1, 3) // shape [2, 3], data [1, 1, 1, 2, 2, 2]
func Broadcast(t *Tensor, dim, n int) (*Tensor, error) {
	return BroadcastWith(context.Background(), parallel.DefaultConfig(), t, dim, n)
}

// BroadcastWith is Broadcast with a context and an explicit parallel
// execution configuration.
func BroadcastWith(ctx context.Context, cfg parallel.Config, t *Tensor, dim, n int) (*Tensor, error) {
	if !t.Valid() {
		return nil, ErrInvalidTensor
	}
	switch {
	case dim < 0 || dim >= len(t.shape):
		return nil, &BroadcastError{Shape: t.shape.Clone(), Dim: dim, N: n, Details: "dimension out of range"}
	case t.shape[dim] != 1:
		return nil, &BroadcastError{Shape: t.shape.Clone(), Dim: dim, N: n, Details: "dimension size is not 1"}
	case n < 1:
		return nil, &BroadcastError{Shape: t.shape.Clone(), Dim: dim, N: n, Details: "target size must be > 0"}
	}

	outShape := t.shape.Clone()
	outShape[dim] = n
	out, err := Create(outShape)
	if err != nil {
		return nil, err
	}
	if t.label != nil {
		out.label = t.label.Clone()
		_, _ = out.label.WriteString(" (Broadcast)")
	}

	strides := t.cachedStrides()
	err = parallel.ForRangeErr(ctx, out.entries, func(ctx context.Context, start, end int) error {
		idx := make(Index, len(outShape)) // scratch, one per range
		for i := start; i < end; i++ {
			if (i-start)%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			unravelInto(idx, outShape, i)
			src := 0
			for d, c := range idx {
				if d != dim {
					src += c * strides[d]
				}
			}
			out.data[i] = t.data[src]
		}
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return out, nil
}
