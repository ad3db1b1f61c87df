// Copyright 2025 The NN-Meta Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for fixed-shape tensors in NN-Meta.
//
// A tensor's shape is fixed at construction and is part of its identity:
// the flat backing store always holds exactly the product of the extents,
// laid out row-major. Indexed access is deliberately unchecked — the caller
// guarantees index validity, trading safety for a zero-overhead element path.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}) // [1, 2, 3, 0]
package tensor

import (
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// DType is a constraint for supported tensor element types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// Shape represents the dimension extents of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with extents 2×3×4.
type Shape = tensor.Shape

// Tensor is a fixed-shape tensor with element type T.
//
// T is the element type (float32, float64, int32, int64). The shape is
// immutable for the tensor's lifetime and the backing store is exclusively
// owned; expression nodes and layers borrow tensors without copying.
type Tensor[T DType] = tensor.Tensor[T]

// Zeros creates a zero-filled tensor of the given shape.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// FromSlice creates a tensor of the given shape from a flat literal
// sequence. A short sequence leaves the trailing slots zero; a long one has
// its excess ignored. Neither case is an error.
//
// Example:
//
//	x := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}) // [1, 2, 3, 0]
func FromSlice[T DType](data []T, shape Shape) *Tensor[T] {
	return tensor.FromSlice(data, shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{3, 3}, float32(3.14))
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}
