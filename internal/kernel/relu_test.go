package kernel

import (
	"math"
	"testing"

	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

func TestReLUExample(t *testing.T) {
	in := tensor.FromSlice([]float32{-2, -1, 0, 1, 2, 3}, tensor.Shape{6})

	out := ReLU(in)

	expected := []float32{0, 0, 0, 1, 2, 3}
	for i, want := range expected {
		if got := out.Data()[i]; got != want {
			t.Errorf("Data()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestReLUDoesNotMutateInput(t *testing.T) {
	in := tensor.FromSlice([]float32{-2, 3}, tensor.Shape{2})
	ReLU(in)

	if in.At(0) != -2 || in.At(1) != 3 {
		t.Errorf("input mutated: %v", in.Data())
	}
}

func TestReLULoopPath(t *testing.T) {
	// 20 elements exceeds the unroll threshold.
	data := make([]float64, 20)
	for i := range data {
		data[i] = float64(i - 10)
	}
	in := tensor.FromSlice(data, tensor.Shape{4, 5})

	out := ReLU(in)

	for i := range data {
		want := data[i]
		if want < 0 {
			want = 0
		}
		if got := out.Data()[i]; got != want {
			t.Errorf("Data()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestReLURankPreserved(t *testing.T) {
	in := tensor.Zeros[float32](tensor.Shape{2, 3, 2})
	out := ReLU(in)
	if !out.Shape().Equal(tensor.Shape{2, 3, 2}) {
		t.Errorf("shape = %v, want [2, 3, 2]", out.Shape())
	}
}

// 16 elements is the largest size eligible for the unrolled path; force each
// path and compare bit patterns.
func TestReLUPathEquivalence(t *testing.T) {
	const size = 16

	src := make([]float32, size)
	for i := range src {
		src[i] = 0.25*float32(i) - 2
	}
	src[3] = float32(math.Copysign(0, -1)) // -0 must map identically on both paths

	unrolledOut := make([]float32, size)
	loopOut := make([]float32, size)
	unrolledReLU[float32](size)(unrolledOut, src)
	loopReLU[float32](size)(loopOut, src)

	for i := range unrolledOut {
		if math.Float32bits(unrolledOut[i]) != math.Float32bits(loopOut[i]) {
			t.Errorf("paths diverge at %d: unrolled %v, loop %v", i, unrolledOut[i], loopOut[i])
		}
	}
}

func TestReLUPathEquivalenceAllSmallSizes(t *testing.T) {
	for size := 1; size <= 16; size++ {
		src := make([]float64, size)
		for i := range src {
			src[i] = float64(size/2 - i)
		}

		unrolledOut := make([]float64, size)
		loopOut := make([]float64, size)
		unrolledReLU[float64](size)(unrolledOut, src)
		loopReLU[float64](size)(loopOut, src)

		for i := range unrolledOut {
			if math.Float64bits(unrolledOut[i]) != math.Float64bits(loopOut[i]) {
				t.Errorf("size %d: paths diverge at %d: unrolled %v, loop %v",
					size, i, unrolledOut[i], loopOut[i])
			}
		}
	}
}
