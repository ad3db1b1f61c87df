package tensor

import "fmt"

// Zeros creates a zero-filled tensor of the given shape.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor.Zeros: invalid shape: %v", err))
	}
	return &Tensor[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
	}
}

// FromSlice creates a tensor of the given shape from a flat literal sequence.
//
// The sequence fills the flat storage in row-major order. A sequence shorter
// than the tensor leaves the remaining slots zero; a longer one has its excess
// ignored. Neither case is an error.
//
// Example:
//
//	t := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2})
//	// flat contents: [1, 2, 3, 0]
func FromSlice[T DType](data []T, shape Shape) *Tensor[T] {
	t := Zeros[T](shape)
	copy(t.data, data)
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, float32(3.14))
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}
