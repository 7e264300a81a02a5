package tensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeStringRenderedAtCreate(t *testing.T) {
	tt, err := Create(NewShape(32, 100, 20, 30, 12))
	require.NoError(t, err)
	assert.Equal(t, "[32, 100, 20, 30, 12]", tt.ShapeString())

	s, err := Scalar(1)
	require.NoError(t, err)
	assert.Equal(t, "[]", s.ShapeString())
}

func TestString(t *testing.T) {
	tt := mustFromSlice(t, []float32{1, 2.5, -3, 4}, Shape{2, 2})
	assert.Equal(t, "tensor(shape: [2, 2], data: [1, 2.5, -3, 4])", tt.String())

	require.NoError(t, tt.SetLabel("weights"))
	assert.Equal(t, `tensor(name: "weights", shape: [2, 2], data: [1, 2.5, -3, 4])`, tt.String())

	s, err := Scalar(3.5)
	require.NoError(t, err)
	assert.Equal(t, "tensor(shape: [], data: [3.5])", s.String())
}

func TestStringTruncatesLargeData(t *testing.T) {
	tt, err := Create(Shape{1000})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		require.NoError(t, tt.Set(i, float32(i)))
	}

	data := tt.renderData()
	assert.LessOrEqual(t, len(data), DataBufferSize)
	assert.True(t, strings.HasPrefix(data, "[0, 1, 2, "))
	assert.True(t, strings.HasSuffix(data, ", ...]"), data)

	// Rendering twice reuses the buffer and yields the same text.
	assert.Equal(t, data, tt.renderData())
}

func TestShapeStringTruncatesHighRank(t *testing.T) {
	shape := make(Shape, 200)
	for i := range shape {
		shape[i] = 1
	}
	tt, err := Create(shape)
	require.NoError(t, err)

	got := tt.ShapeString()
	assert.LessOrEqual(t, len(got), ShapeBufferSize)
	assert.True(t, strings.HasPrefix(got, "[1, 1, "))
	assert.True(t, strings.HasSuffix(got, "1, ...]"), got)
	assert.Equal(t, 1, strings.Count(got, "["))
	assert.Equal(t, 1, strings.Count(got, "]"))
}

func TestShapeStringFitsWithoutMarker(t *testing.T) {
	shape := make(Shape, 100) // "[1, 1, ..., 1]" is 300 bytes
	for i := range shape {
		shape[i] = 1
	}
	tt, err := Create(shape)
	require.NoError(t, err)

	got := tt.ShapeString()
	assert.Len(t, got, 300)
	assert.True(t, strings.HasSuffix(got, ", 1]"), got)
	assert.Equal(t, shape.String(), got)
}
