// Package expr implements a lazy, non-owning expression graph over tensors.
//
// An expression node defers all computation until an element is requested:
// constructing a node never materializes a result, and evaluating an index
// walks the operand subtree fresh on every call, with no caching. Tensor
// leaves borrow their tensor; a node is valid only while every tensor it
// borrows is alive.
//
// The node set is closed: tensor leaf, scalar leaf, and binary combine
// (addition and element-wise multiplication; scalar multiplication is a
// combine with a scalar leaf).
//
// Shape compatibility is the caller's responsibility when materializing a
// result; this layer performs no validation.
package expr

import (
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// Expr is an unevaluated computation producing one element per multi-index.
type Expr[T tensor.DType] interface {
	// At evaluates the expression at the given multi-index.
	At(indices ...int) T
}

// tensorNode is a leaf borrowing a tensor. Evaluation reads the element at
// the requested index; the tensor is never copied.
type tensorNode[T tensor.DType] struct {
	t *tensor.Tensor[T]
}

func (n tensorNode[T]) At(indices ...int) T {
	return n.t.At(indices...)
}

// scalarNode is a leaf that ignores the index and always yields its value.
type scalarNode[T tensor.DType] struct {
	value T
}

func (n scalarNode[T]) At(...int) T {
	return n.value
}

// binaryNode combines two operand expressions element-wise.
type binaryNode[T tensor.DType] struct {
	lhs, rhs Expr[T]
	op       func(T, T) T
}

func (n binaryNode[T]) At(indices ...int) T {
	return n.op(n.lhs.At(indices...), n.rhs.At(indices...))
}

// Wrap creates a leaf node that borrows t.
func Wrap[T tensor.DType](t *tensor.Tensor[T]) Expr[T] {
	return tensorNode[T]{t: t}
}

// Scalar creates a leaf node that yields value at every index.
func Scalar[T tensor.DType](value T) Expr[T] {
	return scalarNode[T]{value: value}
}

// Add creates a node evaluating to a + b element-wise.
func Add[T tensor.DType](a, b Expr[T]) Expr[T] {
	return binaryNode[T]{lhs: a, rhs: b, op: func(x, y T) T { return x + y }}
}

// Mul creates a node evaluating to a * b element-wise.
func Mul[T tensor.DType](a, b Expr[T]) Expr[T] {
	return binaryNode[T]{lhs: a, rhs: b, op: func(x, y T) T { return x * y }}
}

// Scale creates a node evaluating to s * e element-wise.
// It is Mul with a scalar leaf as the left operand.
func Scale[T tensor.DType](s T, e Expr[T]) Expr[T] {
	return Mul(Scalar(s), e)
}

// Materialize evaluates every index of the given shape into a fresh tensor.
// The caller guarantees that shape is compatible with the expression's
// operands; mismapped indices silently produce wrong values, never an error.
func Materialize[T tensor.DType](e Expr[T], shape tensor.Shape) *tensor.Tensor[T] {
	out := tensor.Zeros[T](shape)
	data := out.Data()
	for flat := range data {
		data[flat] = e.At(shape.Unravel(flat)...)
	}
	return out
}
