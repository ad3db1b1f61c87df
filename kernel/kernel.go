// Copyright 2025 The NN-Meta Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the public API for plan-time kernel selection.
//
// Given operand dimensions, the Plan functions resolve once — before any
// element is touched — whether an operation runs on a fully-unrolled
// straight-line kernel or a generic loop kernel. Both paths are bit-identical
// for the same inputs. The convenience ops plan from the operand shapes and
// execute immediately.
//
// Example:
//
//	a := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
//	c := kernel.MatMul(a, b) // [[22, 28], [49, 64]]
package kernel

import (
	"github.com/Kuo-TingKai/NN-meta/internal/kernel"
	"github.com/Kuo-TingKai/NN-meta/tensor"
)

// MatMulKernel computes dst = a·b for the dimensions baked in at plan time.
type MatMulKernel[T tensor.DType] = kernel.MatMulKernel[T]

// MatVecKernel computes dst = w·x + bias for the dimensions baked in at
// plan time.
type MatVecKernel[T tensor.DType] = kernel.MatVecKernel[T]

// ReLUKernel computes dst[i] = max(src[i], 0) over the element count baked
// in at plan time.
type ReLUKernel[T tensor.DType] = kernel.ReLUKernel[T]

// MatMul multiplies an m×n tensor by an n×k tensor into a fresh m×k tensor.
// An inner-dimension mismatch panics at plan time, never mid-computation.
func MatMul[T tensor.DType](a, b *tensor.Tensor[T]) *tensor.Tensor[T] {
	return kernel.MatMul(a, b)
}

// ReLU applies the rectifier element-wise into a fresh tensor of the same
// shape.
func ReLU[T tensor.DType](t *tensor.Tensor[T]) *tensor.Tensor[T] {
	return kernel.ReLU(t)
}

// ShapesMatch reports whether two tensors have identical shapes. Rank is
// compared first; mismatching ranks return false without inspecting extents.
func ShapesMatch[T, U tensor.DType](a *tensor.Tensor[T], b *tensor.Tensor[U]) bool {
	return kernel.ShapesMatch(a, b)
}

// PlanMatMul selects the kernel for an m×n by n×k matrix product.
// The unrolled path is chosen when m, n and k are all <= 4.
func PlanMatMul[T tensor.DType](m, n, k int) MatMulKernel[T] {
	return kernel.PlanMatMul[T](m, n, k)
}

// PlanMatVec selects the kernel for an out×in affine transform.
// The unrolled path is chosen when out and in are both <= 4.
func PlanMatVec[T tensor.DType](out, in int) MatVecKernel[T] {
	return kernel.PlanMatVec[T](out, in)
}

// PlanReLU selects the rectifier kernel for the given flat element count.
// The unrolled path is chosen when size <= 16.
func PlanReLU[T tensor.DType](size int) ReLUKernel[T] {
	return kernel.PlanReLU[T](size)
}
