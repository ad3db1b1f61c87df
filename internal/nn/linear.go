// Package nn provides neural network layers built on the fixed-shape tensor
// type and plan-time kernel selection.
package nn

import (
	"fmt"

	"github.com/Kuo-TingKai/NN-meta/internal/kernel"
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// Linear implements a fully connected (affine) layer.
//
// Performs the transformation: output[i] = Σ_j input[j]·weight[i,j] + bias[i]
// where:
//   - input has shape [inSize]
//   - weight has shape [outSize, inSize]
//   - bias has shape [outSize]
//   - output has shape [outSize]
//
// The matvec kernel is selected once, when the layer is constructed; Forward
// only runs the resolved numeric loop. The layer is stateless beyond its
// weight and bias tensors, which callers may initialize in place through the
// accessors.
//
// Example:
//
//	layer := nn.NewLinear[float32](3, 2)
//	layer.Weight().SetAt(0.1, 0, 0)
//	out := layer.Forward(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}))
type Linear[T tensor.DType] struct {
	inSize  int
	outSize int
	weight  *tensor.Tensor[T] // [outSize, inSize]
	bias    *tensor.Tensor[T] // [outSize]
	kern    kernel.MatVecKernel[T]
}

// NewLinear creates a Linear layer with zeroed weight and bias.
func NewLinear[T tensor.DType](inSize, outSize int) *Linear[T] {
	return &Linear[T]{
		inSize:  inSize,
		outSize: outSize,
		weight:  tensor.Zeros[T](tensor.Shape{outSize, inSize}),
		bias:    tensor.Zeros[T](tensor.Shape{outSize}),
		kern:    kernel.PlanMatVec[T](outSize, inSize),
	}
}

// NewLinearFrom creates a Linear layer borrowing the supplied weight and
// bias. The weight must be rank 2 and the bias rank 1 with the weight's
// first extent; anything else is rejected here, at construction.
func NewLinearFrom[T tensor.DType](weight, bias *tensor.Tensor[T]) *Linear[T] {
	wShape, bShape := weight.Shape(), bias.Shape()
	if wShape.Rank() != 2 {
		panic(fmt.Sprintf("nn.NewLinearFrom: weight must be rank 2, got %s", wShape))
	}
	if bShape.Rank() != 1 || bShape[0] != wShape[0] {
		panic(fmt.Sprintf("nn.NewLinearFrom: bias shape %s does not match weight shape %s", bShape, wShape))
	}

	outSize, inSize := wShape[0], wShape[1]
	return &Linear[T]{
		inSize:  inSize,
		outSize: outSize,
		weight:  weight,
		bias:    bias,
		kern:    kernel.PlanMatVec[T](outSize, inSize),
	}
}

// Forward computes output[i] = Σ_j input[j]·weight[i,j] + bias[i],
// j ascending. The input must have shape [inSize].
func (l *Linear[T]) Forward(input *tensor.Tensor[T]) *tensor.Tensor[T] {
	if !input.Shape().Equal(tensor.Shape{l.inSize}) {
		panic(fmt.Sprintf("nn.Linear.Forward: expected input shape [%d], got %s", l.inSize, input.Shape()))
	}

	out := tensor.Zeros[T](tensor.Shape{l.outSize})
	l.kern(out.Data(), l.weight.Data(), input.Data(), l.bias.Data())
	return out
}

// Weight returns the weight tensor for external initialization.
func (l *Linear[T]) Weight() *tensor.Tensor[T] {
	return l.weight
}

// Bias returns the bias tensor for external initialization.
func (l *Linear[T]) Bias() *tensor.Tensor[T] {
	return l.bias
}

// InSize returns the declared input size.
func (l *Linear[T]) InSize() int {
	return l.inSize
}

// OutSize returns the declared output size.
func (l *Linear[T]) OutSize() int {
	return l.outSize
}
