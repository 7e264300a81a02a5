package tensor

import "fmt"

// Strides returns the row-major strides of t, computing and caching them on
// first use. The returned slice is a copy.
func (t *Tensor) Strides() []int {
	if !t.Valid() {
		return nil
	}
	strides := t.cachedStrides()
	out := make([]int, len(strides))
	copy(out, strides)
	return out
}

func (t *Tensor) cachedStrides() []int {
	t.stridesOnce.Do(func() {
		t.strides = t.shape.ComputeStrides()
	})
	return t.strides
}

// Offset maps a multi-index to a linear offset into the flat buffer:
//
//	offset = idx[0]*stride[0] + idx[1]*stride[1] + ... + idx[n-1]*1
//
// so t.Offset(i1, ..., in) addresses the same element as t[i1]...[in] in a
// row-major dense array. A scalar ignores idx and always maps to offset 0.
// Every coordinate must satisfy 0 <= idx[i] < shape[i].
func (t *Tensor) Offset(idx Index) (int, error) {
	if !t.Valid() {
		return 0, ErrInvalidTensor
	}
	if len(t.shape) == 0 {
		return 0, nil
	}
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("%w: got %d coordinates for rank %d", ErrIndexArity, len(idx), len(t.shape))
	}

	strides := t.cachedStrides()
	offset := 0
	for i, c := range idx {
		if c < 0 || c >= t.shape[i] {
			return 0, fmt.Errorf("%w: coordinate %d in dimension %d (size %d)", ErrIndexOutOfRange, c, i, t.shape[i])
		}
		offset += c * strides[i]
	}
	return offset, nil
}

// Unravel maps a linear offset back to its row-major multi-index.
// It is the inverse of Offset for every offset in [0, NumElements()).
func (t *Tensor) Unravel(offset int) (Index, error) {
	if !t.Valid() {
		return nil, ErrInvalidTensor
	}
	if offset < 0 || offset >= t.entries {
		return nil, fmt.Errorf("%w: offset %d (entries %d)", ErrIndexOutOfRange, offset, t.entries)
	}
	idx := make(Index, len(t.shape))
	unravelInto(idx, t.shape, offset)
	return idx, nil
}

// unravelInto fills idx with the coordinates of offset within shape.
func unravelInto(idx Index, shape Shape, offset int) {
	rem := offset
	for i := len(shape) - 1; i >= 0; i-- {
		idx[i] = rem % shape[i]
		rem /= shape[i]
	}
}

// Get returns the element at a linear offset.
func (t *Tensor) Get(offset int) (float32, error) {
	if !t.Valid() {
		return 0, ErrInvalidTensor
	}
	if offset < 0 || offset >= t.entries {
		return 0, fmt.Errorf("%w: offset %d (entries %d)", ErrIndexOutOfRange, offset, t.entries)
	}
	return t.data[offset], nil
}

// Set stores v at a linear offset.
func (t *Tensor) Set(offset int, v float32) error {
	if !t.Valid() {
		return ErrInvalidTensor
	}
	if offset < 0 || offset >= t.entries {
		return fmt.Errorf("%w: offset %d (entries %d)", ErrIndexOutOfRange, offset, t.entries)
	}
	t.data[offset] = v
	return nil
}

// EntryGet returns the element at a multi-index.
func (t *Tensor) EntryGet(idx Index) (float32, error) {
	offset, err := t.Offset(idx)
	if err != nil {
		return 0, err
	}
	return t.Get(offset)
}

// EntrySet stores v at a multi-index.
func (t *Tensor) EntrySet(idx Index, v float32) error {
	offset, err := t.Offset(idx)
	if err != nil {
		return err
	}
	return t.Set(offset, v)
}
