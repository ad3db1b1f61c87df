package nn

import (
	"github.com/Kuo-TingKai/NN-meta/internal/kernel"
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// ReLU is a rectified linear unit activation module.
//
// Applies the element-wise function f(x) = max(x, 0). The kernel for a given
// element count is planned once and reused on subsequent calls, so selection
// stays off the element path.
//
// Example:
//
//	relu := nn.NewReLU[float32]()
//	out := relu.Forward(input) // negative values become 0
type ReLU[T tensor.DType] struct {
	plans map[int]kernel.ReLUKernel[T]
}

// NewReLU creates a new ReLU activation module.
func NewReLU[T tensor.DType]() *ReLU[T] {
	return &ReLU[T]{plans: make(map[int]kernel.ReLUKernel[T])}
}

// Forward applies the rectifier into a fresh tensor of the input's shape.
func (r *ReLU[T]) Forward(input *tensor.Tensor[T]) *tensor.Tensor[T] {
	size := input.Size()
	kern, ok := r.plans[size]
	if !ok {
		kern = kernel.PlanReLU[T](size)
		r.plans[size] = kern
	}

	out := tensor.Zeros[T](input.Shape())
	kern(out.Data(), input.Data())
	return out
}
