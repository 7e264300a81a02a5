package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorCount   = 100_000           // Maximum number of tensors in a file
	MaxTensorNameLen = 4096              // Maximum tensor name length
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks offsets and sizes but not names.
	ValidationNormal
	// ValidationNone skips header validation. Data bounds are still enforced
	// while decoding.
	ValidationNone
)

// ParseValidationLevel maps "strict", "normal" or "none" to a level.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch strings.ToLower(s) {
	case "", "strict":
		return ValidationStrict, nil
	case "normal":
		return ValidationNormal, nil
	case "none":
		return ValidationNone, nil
	default:
		return 0, fmt.Errorf("unknown validation level %q", s)
	}
}

// String returns the level name.
func (l ValidationLevel) String() string {
	switch l {
	case ValidationStrict:
		return "strict"
	case ValidationNormal:
		return "normal"
	case ValidationNone:
		return "none"
	default:
		return "unknown"
	}
}

// ValidateTensorOffsets checks for overlapping tensor regions and out-of-bounds access.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	if len(tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(tensors), MaxTensorCount),
			Err:     ErrTooManyTensors,
		}
	}

	// Sort tensors by offset for efficient overlap detection.
	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
				Err:     ErrOutOfBounds,
			}
		}

		if t.Offset > dataSize || t.Size > dataSize-t.Offset {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
				Err:     ErrOutOfBounds,
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
					Err: ErrOffsetOverlap,
				}
			}
		}
	}

	return nil
}

// ValidateTensorName rejects empty, overlong, and path-like names.
func ValidateTensorName(name string) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: details, Err: ErrInvalidTensorName}
	}

	switch {
	case name == "":
		return invalid("empty name")
	case len(name) > MaxTensorNameLen:
		return invalid(fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen))
	case strings.Contains(name, ".."):
		return invalid("contains '..'")
	case strings.ContainsAny(name, `/\`):
		return invalid(`contains path separator (/ or \)`)
	case strings.Contains(name, "\x00"):
		return invalid("contains null byte")
	}
	return nil
}

// ValidateTensorMeta checks that a tensor's dtype, shape and byte size agree.
func ValidateTensorMeta(t TensorMeta) error {
	if t.DType != DTypeFloat32 {
		return &ValidationError{Type: "unsupported_dtype", Tensor: t.Name, Details: fmt.Sprintf("dtype %q", t.DType)}
	}
	elements := int64(1)
	for i, dim := range t.Shape {
		if dim <= 0 {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  t.Name,
				Details: fmt.Sprintf("dimension %d is %d", i, dim),
			}
		}
		if elements > math.MaxInt64/ElementSize/int64(dim) {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  t.Name,
				Details: fmt.Sprintf("shape %v overflows", t.Shape),
			}
		}
		elements *= int64(dim)
	}
	if t.Size != elements*ElementSize {
		return &ValidationError{
			Type:    "size_mismatch",
			Tensor:  t.Name,
			Details: fmt.Sprintf("shape %v needs %d bytes, header says %d", t.Shape, elements*ElementSize, t.Size),
		}
	}
	return nil
}

// ValidateHeader performs header validation at the given level.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
			Err:     ErrTooManyTensors,
		}
	}

	if level == ValidationStrict {
		seen := make(map[string]bool, len(h.Tensors))
		for _, t := range h.Tensors {
			if err := ValidateTensorName(t.Name); err != nil {
				return err
			}
			if seen[t.Name] {
				return &ValidationError{Type: "duplicate_name", Tensor: t.Name, Details: "name stored twice", Err: ErrInvalidTensorName}
			}
			seen[t.Name] = true
		}
	}

	for _, t := range h.Tensors {
		if err := ValidateTensorMeta(t); err != nil {
			return err
		}
	}

	return ValidateTensorOffsets(h.Tensors, dataSize)
}
