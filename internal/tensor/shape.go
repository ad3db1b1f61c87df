package tensor

import "fmt"

// Shape represents the dimension extents of a tensor.
// A shape is fixed when the tensor is created and never changes afterwards.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (rank >= 1, all extents > 0).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape must have rank >= 1")
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid extent at dimension %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
// Rank is compared first; extents are only inspected when ranks match.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// stride[i] is the product of all extents after dimension i, so the
// last dimension varies fastest in flat storage.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset maps a multi-index to its flat row-major offset.
// The same mapping is used for every element access, indexed or flat.
func (s Shape) Offset(indices ...int) int {
	offset := 0
	multiplier := 1
	for i := len(s) - 1; i >= 0; i-- {
		offset += indices[i] * multiplier
		multiplier *= s[i]
	}
	return offset
}

// Unravel maps a flat offset back to its multi-index.
// Together with Offset this forms a bijection over [0, NumElements).
func (s Shape) Unravel(flat int) []int {
	indices := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		indices[i] = flat % s[i]
		flat /= s[i]
	}
	return indices
}

// String returns a human-readable representation, e.g. "[2, 3]".
func (s Shape) String() string {
	out := "["
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(dim)
	}
	return out + "]"
}
