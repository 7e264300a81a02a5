package serialization

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestValidateTensorOffsets_NoOverlap verifies that valid tensors pass validation.
func TestValidateTensorOffsets_NoOverlap(t *testing.T) {
	tensors := []TensorMeta{
		{Name: "tensor1", Offset: 0, Size: 100},
		{Name: "tensor2", Offset: 100, Size: 200},
		{Name: "tensor3", Offset: 300, Size: 150},
	}

	if err := ValidateTensorOffsets(tensors, 500); err != nil {
		t.Errorf("Expected no error for valid tensors, got: %v", err)
	}
}

func TestValidateTensorOffsets(t *testing.T) {
	tests := []struct {
		name     string
		tensors  []TensorMeta
		dataSize int64
		wantType string
		wantErr  error
	}{
		{
			name: "overlap",
			tensors: []TensorMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 50, Size: 100},
			},
			dataSize: 200,
			wantType: "offset_overlap",
			wantErr:  ErrOffsetOverlap,
		},
		{
			name: "overlap by one byte, unsorted input",
			tensors: []TensorMeta{
				{Name: "b", Offset: 99, Size: 100},
				{Name: "a", Offset: 0, Size: 100},
			},
			dataSize: 200,
			wantType: "offset_overlap",
			wantErr:  ErrOffsetOverlap,
		},
		{
			name:     "past end of data",
			tensors:  []TensorMeta{{Name: "a", Offset: 100, Size: 101}},
			dataSize: 200,
			wantType: "out_of_bounds",
			wantErr:  ErrOutOfBounds,
		},
		{
			name:     "offset plus size overflows",
			tensors:  []TensorMeta{{Name: "a", Offset: math.MaxInt64 - 3, Size: 8}},
			dataSize: 200,
			wantType: "out_of_bounds",
			wantErr:  ErrOutOfBounds,
		},
		{
			name:     "negative offset",
			tensors:  []TensorMeta{{Name: "a", Offset: -4, Size: 4}},
			dataSize: 200,
			wantType: "negative_offset",
			wantErr:  ErrOutOfBounds,
		},
		{
			name:     "negative size",
			tensors:  []TensorMeta{{Name: "a", Offset: 0, Size: -4}},
			dataSize: 200,
			wantType: "negative_offset",
			wantErr:  ErrOutOfBounds,
		},
		{
			name: "exact boundary",
			tensors: []TensorMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 100, Size: 100},
			},
			dataSize: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTensorOffsets(tt.tensors, tt.dataSize)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", verr.Type, tt.wantType)
			}
		})
	}
}

func TestValidateTensorOffsets_TooMany(t *testing.T) {
	tensors := make([]TensorMeta, MaxTensorCount+1)
	if err := ValidateTensorOffsets(tensors, 0); !errors.Is(err, ErrTooManyTensors) {
		t.Errorf("expected ErrTooManyTensors, got %v", err)
	}
}

func TestValidateTensorName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "weights", false},
		{"dotted", "layer.0.bias", false},
		{"max length", strings.Repeat("a", MaxTensorNameLen), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxTensorNameLen+1), true},
		{"parent traversal", "../etc/passwd", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTensorName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTensorName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTensorName) {
				t.Errorf("expected ErrInvalidTensorName, got %v", err)
			}
		})
	}
}

func TestValidateTensorMeta(t *testing.T) {
	tests := []struct {
		name     string
		meta     TensorMeta
		wantType string
	}{
		{"matrix", TensorMeta{Name: "m", DType: DTypeFloat32, Shape: []int{2, 3}, Size: 24}, ""},
		{"scalar", TensorMeta{Name: "s", DType: DTypeFloat32, Size: 4}, ""},
		{"wrong dtype", TensorMeta{Name: "x", DType: "int64", Shape: []int{2}, Size: 16}, "unsupported_dtype"},
		{"zero dim", TensorMeta{Name: "x", DType: DTypeFloat32, Shape: []int{2, 0}, Size: 0}, "invalid_shape"},
		{"negative dim", TensorMeta{Name: "x", DType: DTypeFloat32, Shape: []int{-1}, Size: 4}, "invalid_shape"},
		{"overflow", TensorMeta{Name: "x", DType: DTypeFloat32, Shape: []int{1 << 31, 1 << 31, 1 << 31}, Size: 4}, "invalid_shape"},
		{"size mismatch", TensorMeta{Name: "x", DType: DTypeFloat32, Shape: []int{2, 2}, Size: 12}, "size_mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTensorMeta(tt.meta)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", verr.Type, tt.wantType)
			}
		})
	}
}

func TestValidateHeader_Levels(t *testing.T) {
	bad := &Header{Tensors: []TensorMeta{
		{Name: "a/b", DType: DTypeFloat32, Shape: []int{1}, Offset: 0, Size: 4},
	}}

	if err := ValidateHeader(bad, 4, ValidationStrict); !errors.Is(err, ErrInvalidTensorName) {
		t.Errorf("strict: expected ErrInvalidTensorName, got %v", err)
	}
	if err := ValidateHeader(bad, 4, ValidationNormal); err != nil {
		t.Errorf("normal: names are not checked, got %v", err)
	}
	if err := ValidateHeader(bad, 0, ValidationNormal); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("normal: expected ErrOutOfBounds, got %v", err)
	}
	if err := ValidateHeader(bad, 0, ValidationNone); err != nil {
		t.Errorf("none: expected no error, got %v", err)
	}
}

func TestValidateHeader_DuplicateName(t *testing.T) {
	h := &Header{Tensors: []TensorMeta{
		{Name: "w", DType: DTypeFloat32, Shape: []int{1}, Offset: 0, Size: 4},
		{Name: "w", DType: DTypeFloat32, Shape: []int{1}, Offset: 4, Size: 4},
	}}

	err := ValidateHeader(h, 8, ValidationStrict)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Type != "duplicate_name" {
		t.Fatalf("expected duplicate_name, got %v", err)
	}
}

func TestParseValidationLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ValidationLevel
	}{
		{"", ValidationStrict},
		{"strict", ValidationStrict},
		{"Normal", ValidationNormal},
		{"NONE", ValidationNone},
	}
	for _, tt := range tests {
		got, err := ParseValidationLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseValidationLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseValidationLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.in != "" && !strings.EqualFold(got.String(), tt.in) {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}

	if _, err := ParseValidationLevel("paranoid"); err == nil {
		t.Error("expected error for unknown level")
	}
}

// FuzzValidateTensorName ensures name validation never panics on random input.
func FuzzValidateTensorName(f *testing.F) {
	f.Add("normal_tensor_name")
	f.Add("../malicious")
	f.Add("path/to/tensor")
	f.Add(strings.Repeat("a", MaxTensorNameLen))
	f.Add("\x00null_byte")

	f.Fuzz(func(_ *testing.T, name string) {
		_ = ValidateTensorName(name)
	})
}

// FuzzValidateTensorMeta ensures shape checks never panic.
func FuzzValidateTensorMeta(f *testing.F) {
	f.Add(2, 3, int64(24))
	f.Add(-1, 5, int64(0))
	f.Add(1<<30, 1<<30, int64(4))

	f.Fuzz(func(_ *testing.T, d0, d1 int, size int64) {
		_ = ValidateTensorMeta(TensorMeta{Name: "fuzz", DType: DTypeFloat32, Shape: []int{d0, d1}, Size: size})
	})
}
