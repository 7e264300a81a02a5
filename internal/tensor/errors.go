package tensor

import (
	"errors"
	"fmt"
)

// Common errors. Every failing operation returns an error that matches one
// of these with errors.Is.
var (
	ErrInvalidTensor      = errors.New("invalid tensor")
	ErrInvalidShape       = fmt.Errorf("%w: invalid shape", ErrInvalidTensor)
	ErrIndexArity         = errors.New("index arity does not match tensor rank")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrShapeMismatch      = errors.New("tensor shape mismatch")
	ErrBroadcastDimension = errors.New("invalid broadcast dimension")
)

// ShapeMismatchError reports an elementwise operation on tensors whose
// shapes are not identical.
type ShapeMismatchError struct {
	Op       string // Operation name (e.g., "add")
	Expected Shape  // Shape of the left operand
	Got      Shape  // Shape of the right operand
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: tensor shape mismatch: expected %s, got %s", e.Op, e.Expected, e.Got)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// BroadcastError reports a broadcast request on a dimension that cannot be
// expanded.
type BroadcastError struct {
	Shape   Shape
	Dim     int
	N       int
	Details string
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	return fmt.Sprintf("broadcast %s along dim %d to %d: %s", e.Shape, e.Dim, e.N, e.Details)
}

// Unwrap returns ErrBroadcastDimension.
func (e *BroadcastError) Unwrap() error {
	return ErrBroadcastDimension
}
