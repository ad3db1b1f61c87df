// Package kernel selects and specializes numeric kernels ahead of execution.
//
// Selection is a plan-time decision: given the operand dimensions, a Plan
// function returns either a fully-unrolled kernel (straight-line generated
// code, one independent accumulation per output element) or a generic loop
// kernel. The choice is made once, before the hot path runs; the returned
// kernel contains no size branching of its own.
//
// Both paths of every operation are bit-identical for the same inputs: the
// accumulator has the element type T, is zero-initialized, and summation
// order is strictly ascending, so floating-point rounding is reproducible
// across paths.
package kernel

import (
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

//go:generate go run gen_kernels.go

// Unroll thresholds. Matrix multiply unrolls when every dimension is at most
// matMulUnrollMax; the rectifier unrolls when the flat element count is at
// most reluUnrollMax.
const (
	matMulUnrollMax = 4
	reluUnrollMax   = 16
)

// MatMulKernel computes dst = a·b for the dimensions baked in at plan time.
// dst, a and b are flat row-major views of m×k, m×n and n×k tensors.
type MatMulKernel[T tensor.DType] func(dst, a, b []T)

// MatVecKernel computes dst = w·x + bias for the dimensions baked in at plan
// time. w is the flat view of an out×in matrix; x has in elements, dst and
// bias have out elements.
type MatVecKernel[T tensor.DType] func(dst, w, x, bias []T)

// ReLUKernel computes dst[i] = max(src[i], 0) over the element count baked
// in at plan time.
type ReLUKernel[T tensor.DType] func(dst, src []T)

// PlanMatMul selects the kernel for an m×n by n×k matrix product.
// The unrolled path is chosen when m, n and k are all <= 4.
func PlanMatMul[T tensor.DType](m, n, k int) MatMulKernel[T] {
	if m <= matMulUnrollMax && n <= matMulUnrollMax && k <= matMulUnrollMax {
		return unrolledMatMul[T](m, n, k)
	}
	return loopMatMul[T](m, n, k)
}

// PlanMatVec selects the kernel for an out×in affine transform.
// The unrolled path is chosen when out and in are both <= 4.
func PlanMatVec[T tensor.DType](out, in int) MatVecKernel[T] {
	if out <= matMulUnrollMax && in <= matMulUnrollMax {
		return unrolledMatVec[T](out, in)
	}
	return loopMatVec[T](out, in)
}

// PlanReLU selects the rectifier kernel for the given flat element count.
// The unrolled path is chosen when size <= 16.
func PlanReLU[T tensor.DType](size int) ReLUKernel[T] {
	if size <= reluUnrollMax {
		return unrolledReLU[T](size)
	}
	return loopReLU[T](size)
}

// ShapesMatch reports whether two tensors have identical shapes.
// Rank is compared first and mismatching ranks return false without
// inspecting any extents.
func ShapesMatch[T, U tensor.DType](a *tensor.Tensor[T], b *tensor.Tensor[U]) bool {
	return a.Shape().Equal(b.Shape())
}
