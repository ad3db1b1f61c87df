// Copyright 2025 The NN-Meta Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network layers in NN-Meta.
//
// Layers compose fixed-shape tensors with plan-time kernel selection: a
// layer resolves its kernel when it is constructed, so Forward only runs
// the resolved numeric loop.
//
// Example:
//
//	layer := nn.NewLinear[float32](3, 2)
//	relu := nn.NewReLU[float32]()
//	out := relu.Forward(layer.Forward(input))
package nn

import (
	"github.com/Kuo-TingKai/NN-meta/internal/nn"
	"github.com/Kuo-TingKai/NN-meta/tensor"
)

// Linear is a fully connected (affine) layer computing
// output[i] = Σ_j input[j]·weight[i,j] + bias[i].
type Linear[T tensor.DType] = nn.Linear[T]

// ReLU is a rectified linear unit activation module.
type ReLU[T tensor.DType] = nn.ReLU[T]

// NewLinear creates a Linear layer with zeroed weight [outSize, inSize] and
// bias [outSize]. Initialize them in place via Weight() and Bias().
func NewLinear[T tensor.DType](inSize, outSize int) *Linear[T] {
	return nn.NewLinear[T](inSize, outSize)
}

// NewLinearFrom creates a Linear layer borrowing the supplied weight and
// bias tensors. Shape violations are rejected at construction.
func NewLinearFrom[T tensor.DType](weight, bias *tensor.Tensor[T]) *Linear[T] {
	return nn.NewLinearFrom(weight, bias)
}

// NewReLU creates a new ReLU activation module.
func NewReLU[T tensor.DType]() *ReLU[T] {
	return nn.NewReLU[T]()
}
