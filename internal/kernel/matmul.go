package kernel

import (
	"fmt"

	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// MatMul multiplies an m×n tensor by an n×k tensor into a fresh m×k tensor.
//
// The kernel path is resolved from the operand shapes before any element is
// touched; an inner-dimension mismatch is rejected at that point, never
// mid-computation.
func MatMul[T tensor.DType](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	aShape, bShape := a.Shape(), b.Shape()
	if aShape.Rank() != 2 || bShape.Rank() != 2 {
		panic(fmt.Sprintf("kernel.MatMul: only rank-2 tensors supported, got %s and %s", aShape, bShape))
	}

	m, n := aShape[0], aShape[1]
	if bShape[0] != n {
		panic(fmt.Sprintf("kernel.MatMul: shape mismatch %s · %s", aShape, bShape))
	}
	k := bShape[1]

	out := tensor.Zeros[T](tensor.Shape{m, k})
	PlanMatMul[T](m, n, k)(out.Data(), a.Data(), b.Data())
	return out
}

// loopMatMul returns the generic triple-loop kernel.
// dst[i*k+j] = Σ_p a[i*n+p] * b[p*k+j], p ascending from 0 to n-1.
func loopMatMul[T tensor.DType](m, n, k int) MatMulKernel[T] {
	return func(dst, a, b []T) {
		for i := 0; i < m; i++ {
			for j := 0; j < k; j++ {
				var sum T
				for p := 0; p < n; p++ {
					sum += a[i*n+p] * b[p*k+j]
				}
				dst[i*k+j] = sum
			}
		}
	}
}
