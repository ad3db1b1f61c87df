// Copyright 2025 The NN-Meta Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides the public API for lazy tensor expressions.
//
// Expression nodes borrow tensors and defer all computation until an element
// is requested; nothing is materialized or cached. A node is valid only as
// long as every tensor it borrows is alive.
//
// Example:
//
//	a := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})
//	sum := expr.Add(expr.Wrap(a), expr.Wrap(b))
//	v := sum.At(1, 0)                                  // evaluated on demand
//	out := expr.Materialize(sum, tensor.Shape{2, 2})   // or all at once
package expr

import (
	"github.com/Kuo-TingKai/NN-meta/internal/expr"
	"github.com/Kuo-TingKai/NN-meta/tensor"
)

// Expr is an unevaluated computation producing one element per multi-index.
type Expr[T tensor.DType] = expr.Expr[T]

// Wrap creates a leaf node that borrows t.
func Wrap[T tensor.DType](t *tensor.Tensor[T]) Expr[T] {
	return expr.Wrap(t)
}

// Scalar creates a leaf node that yields value at every index.
func Scalar[T tensor.DType](value T) Expr[T] {
	return expr.Scalar(value)
}

// Add creates a node evaluating to a + b element-wise.
func Add[T tensor.DType](a, b Expr[T]) Expr[T] {
	return expr.Add(a, b)
}

// Mul creates a node evaluating to a * b element-wise.
func Mul[T tensor.DType](a, b Expr[T]) Expr[T] {
	return expr.Mul(a, b)
}

// Scale creates a node evaluating to s * e element-wise.
func Scale[T tensor.DType](s T, e Expr[T]) Expr[T] {
	return expr.Scale(s, e)
}

// Materialize evaluates every index of the given shape into a fresh tensor.
// Shape compatibility with the expression's operands is the caller's
// responsibility.
func Materialize[T tensor.DType](e Expr[T], shape tensor.Shape) *tensor.Tensor[T] {
	return expr.Materialize(e, shape)
}
