package tensor

import (
	"errors"
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{nil, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{32, 100, 20, 30, 12}, 23040000},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	tests := []struct {
		shape   Shape
		wantErr bool
	}{
		{Shape{}, false},
		{Shape{1}, false},
		{Shape{2, 3}, false},
		{Shape{0}, true},
		{Shape{2, 0, 3}, true},
		{Shape{-1, 2}, true},
	}

	for _, tt := range tests {
		err := tt.shape.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%v.Validate() error = %v, wantErr %v", tt.shape, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%v.Validate() error = %v, want ErrInvalidShape", tt.shape, err)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{3, 2}, false},
		{Shape{2, 3}, Shape{2, 3, 1}, false},
		{Shape{}, Shape{}, true},
		{Shape{}, nil, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Equal(tt.a); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{32, 100, 20, 30, 12}, []int{720000, 7200, 360, 12, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Fatalf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestNewShapeCopies(t *testing.T) {
	dims := []int{2, 3}
	s := NewShape(dims...)
	dims[0] = 99
	assertEqualShape(t, Shape{2, 3}, s, "NewShape must not alias its input")

	clone := s.Clone()
	clone[1] = 7
	assertEqualShape(t, Shape{2, 3}, s, "Clone must not alias")
}

func TestShapeString(t *testing.T) {
	if got := NewShape(32, 100, 20).String(); got != "[32, 100, 20]" {
		t.Errorf("String() = %q", got)
	}
	if got := NewShape().String(); got != "[]" {
		t.Errorf("scalar String() = %q", got)
	}
	if got := NewIndex(0, 99, 2).String(); got != "(0, 99, 2)" {
		t.Errorf("Index String() = %q", got)
	}
}
