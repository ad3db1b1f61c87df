package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

func TestWrapReadsThrough(t *testing.T) {
	tn := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	e := Wrap(tn)

	assert.Equal(t, float32(1), e.At(0, 0))
	assert.Equal(t, float32(4), e.At(1, 1))
}

func TestWrapBorrowsWithoutCopying(t *testing.T) {
	tn := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	e := Wrap(tn)

	// A write to the borrowed tensor must be visible through the node.
	tn.SetAt(42, 0, 1)
	assert.Equal(t, float32(42), e.At(0, 1))
}

func TestScalarIgnoresIndex(t *testing.T) {
	e := Scalar(float64(2.5))

	assert.Equal(t, 2.5, e.At())
	assert.Equal(t, 2.5, e.At(0))
	assert.Equal(t, 2.5, e.At(3, 1, 2))
}

func TestAdd(t *testing.T) {
	a := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	e := Add(Wrap(a), Wrap(b))

	expected := [][]float32{{6, 8}, {10, 12}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, expected[i][j], e.At(i, j), "at (%d, %d)", i, j)
		}
	}
}

func TestMul(t *testing.T) {
	a := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.FromSlice([]int32{5, 6, 7, 8}, tensor.Shape{2, 2})
	e := Mul(Wrap(a), Wrap(b))

	assert.Equal(t, int32(5), e.At(0, 0))
	assert.Equal(t, int32(12), e.At(0, 1))
	assert.Equal(t, int32(21), e.At(1, 0))
	assert.Equal(t, int32(32), e.At(1, 1))
}

func TestScale(t *testing.T) {
	a := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	e := Scale(2, Wrap(a))

	assert.Equal(t, float32(2), e.At(0, 0))
	assert.Equal(t, float32(8), e.At(1, 1))
}

func TestNestedExpression(t *testing.T) {
	a := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	// 3 * (a + b) evaluated per index, no intermediate tensor.
	e := Scale(3, Add(Wrap(a), Wrap(b)))

	assert.Equal(t, float32(18), e.At(0, 0))
	assert.Equal(t, float32(36), e.At(1, 1))
}

// Evaluating the same index repeatedly yields the same value and leaves the
// borrowed tensors untouched.
func TestEvaluationIsPure(t *testing.T) {
	a := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	e := Add(Wrap(a), Wrap(b))

	first := e.At(1, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.At(1, 0))
	}

	assert.Equal(t, []float32{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float32{5, 6, 7, 8}, b.Data())
}

func TestMaterialize(t *testing.T) {
	a := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	out := Materialize(Add(Wrap(a), Wrap(b)), tensor.Shape{2, 2})

	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float32{6, 8, 10, 12}, out.Data())
}

func TestMaterializeDoesNotAliasOperands(t *testing.T) {
	a := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	out := Materialize(Wrap(a), tensor.Shape{2})

	out.SetAt(99, 0)
	assert.Equal(t, float64(1), a.At(0))
}
