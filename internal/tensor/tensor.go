package tensor

import "fmt"

// Tensor is a fixed-shape tensor with element type T.
//
// The shape is part of the tensor's identity: it is set at construction and
// immutable for the tensor's lifetime. The backing store is a flat row-major
// slice whose length always equals the product of the extents.
//
// A tensor is exclusively owned by its creator; layers and expression nodes
// borrow it without copying. There is no shared ownership.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{2, 3})
//	t.SetAt(1.5, 0, 2)
//	v := t.At(0, 2)
type Tensor[T DType] struct {
	shape  Shape
	stride []int
	data   []T
}

// Shape returns the tensor's dimension extents.
// The returned slice must not be mutated.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// Size returns the total number of elements.
func (t *Tensor[T]) Size() int {
	return len(t.data)
}

// Data returns the flat row-major view of all elements.
// The slice directly aliases the backing store; kernels use it for
// linear iteration, and writes through it mutate the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given multi-index.
//
// Indexing is unchecked: the caller guarantees that each index is within the
// corresponding extent. An out-of-range index that still lands inside the
// backing store silently addresses the wrong element.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// SetAt stores value at the given multi-index. Unchecked, like At.
func (t *Tensor[T]) SetAt(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

// offset computes the flat row-major offset for a multi-index.
// Must agree exactly with Shape.Offset.
func (t *Tensor[T]) offset(indices []int) int {
	offset := 0
	for i, idx := range indices {
		offset += idx * t.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	clone := Zeros[T](t.shape)
	copy(clone.data, t.data)
	return clone
}

// String returns a human-readable summary, e.g. "Tensor[float32][2, 3]".
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%s", dtypeName[T](), t.shape)
}
