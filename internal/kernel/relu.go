package kernel

import (
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// ReLU applies the rectifier element-wise into a fresh tensor of the same
// shape. The kernel path is resolved from the element count before execution.
func ReLU[T tensor.DType](t *tensor.Tensor[T]) *tensor.Tensor[T] {
	out := tensor.Zeros[T](t.Shape())
	PlanReLU[T](t.Size())(out.Data(), t.Data())
	return out
}

// rectify is the shared scalar rule for both rectifier paths:
// x if x > 0, else 0. Comparing (rather than calling max) sends NaN
// inputs to zero on both paths.
func rectify[T tensor.DType](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

// loopReLU returns the generic single-loop rectifier kernel.
func loopReLU[T tensor.DType](size int) ReLUKernel[T] {
	return func(dst, src []T) {
		for i := 0; i < size; i++ {
			dst[i] = rectify(src[i])
		}
	}
}
