package kernel

import (
	"testing"

	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

func TestShapesMatch(t *testing.T) {
	a := tensor.Zeros[float32](tensor.Shape{2, 3})
	b := tensor.Zeros[float32](tensor.Shape{2, 3})
	c := tensor.Zeros[float32](tensor.Shape{3, 2})
	d := tensor.Zeros[float32](tensor.Shape{2, 3, 1})

	if !ShapesMatch(a, b) {
		t.Error("ShapesMatch([2,3], [2,3]) = false, want true")
	}
	if ShapesMatch(a, c) {
		t.Error("ShapesMatch([2,3], [3,2]) = true, want false")
	}
	if ShapesMatch(a, d) {
		t.Error("ShapesMatch([2,3], [2,3,1]) = true, want false")
	}
}

// Element types play no part in shape comparison.
func TestShapesMatchAcrossDTypes(t *testing.T) {
	a := tensor.Zeros[float32](tensor.Shape{4, 2})
	b := tensor.Zeros[int64](tensor.Shape{4, 2})

	if !ShapesMatch(a, b) {
		t.Error("ShapesMatch across dtypes = false, want true")
	}
}

// The planner must hand out working kernels on either side of the thresholds.
func TestPlanThresholds(t *testing.T) {
	tests := []struct {
		m, n, k int
	}{
		{1, 1, 1},
		{4, 4, 4}, // largest unrolled
		{5, 4, 4}, // smallest loop (m)
		{4, 5, 4}, // smallest loop (n)
		{4, 4, 5}, // smallest loop (k)
		{8, 8, 8},
	}

	for _, tt := range tests {
		a := make([]float32, tt.m*tt.n)
		b := make([]float32, tt.n*tt.k)
		for i := range a {
			a[i] = 1
		}
		for i := range b {
			b[i] = 1
		}

		dst := make([]float32, tt.m*tt.k)
		PlanMatMul[float32](tt.m, tt.n, tt.k)(dst, a, b)

		// All-ones operands: every output element equals n.
		for i, got := range dst {
			if got != float32(tt.n) {
				t.Errorf("%dx%dx%d: dst[%d] = %v, want %v", tt.m, tt.n, tt.k, i, got, tt.n)
			}
		}
	}
}

func TestPlanReLUThresholds(t *testing.T) {
	for _, size := range []int{1, 16, 17, 100} {
		src := make([]float64, size)
		for i := range src {
			src[i] = float64(i%3 - 1)
		}

		dst := make([]float64, size)
		PlanReLU[float64](size)(dst, src)

		for i := range src {
			want := src[i]
			if want < 0 {
				want = 0
			}
			if dst[i] != want {
				t.Errorf("size %d: dst[%d] = %v, want %v", size, i, dst[i], want)
			}
		}
	}
}
