package kernel

import (
	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

// loopMatVec returns the generic loop kernel for an out×in affine transform.
// dst[i] = (Σ_j x[j] * w[i*in+j]) + bias[i], j ascending from 0 to in-1.
// The bias is added after the accumulation, matching the unrolled path's
// left-to-right expression order.
func loopMatVec[T tensor.DType](out, in int) MatVecKernel[T] {
	return func(dst, w, x, bias []T) {
		for i := 0; i < out; i++ {
			var sum T
			for j := 0; j < in; j++ {
				sum += x[j] * w[i*in+j]
			}
			dst[i] = sum + bias[i]
		}
	}
}
