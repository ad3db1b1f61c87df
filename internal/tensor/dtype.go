// Package tensor provides the core fixed-shape tensor type for NN-Meta.
package tensor

import "fmt"

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// dtypeName returns a human-readable name for a generic element type.
// Named types satisfying the constraint report their own name.
func dtypeName[T DType]() string {
	var dummy T
	return fmt.Sprintf("%T", dummy)
}
