package kernel

import (
	"math"
	"testing"

	"github.com/Kuo-TingKai/NN-meta/internal/tensor"
)

func TestMatMulExample(t *testing.T) {
	a := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})

	out := MatMul(a, b)

	if !out.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2, 2]", out.Shape())
	}
	expected := []float32{22, 28, 49, 64}
	for i, want := range expected {
		if got := out.Data()[i]; got != want {
			t.Errorf("Data()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMatMulLoopPath(t *testing.T) {
	// 5x5 exceeds the unroll threshold; multiply by the identity.
	a := tensor.Zeros[float64](tensor.Shape{5, 5})
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			a.SetAt(float64(i*5+j+1), i, j)
		}
	}
	eye := tensor.Zeros[float64](tensor.Shape{5, 5})
	for i := 0; i < 5; i++ {
		eye.SetAt(1, i, i)
	}

	out := MatMul(a, eye)
	for i, want := range a.Data() {
		if got := out.Data()[i]; got != want {
			t.Errorf("Data()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMatMulInt(t *testing.T) {
	a := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := tensor.FromSlice([]int64{5, 6, 7, 8}, tensor.Shape{2, 2})

	out := MatMul(a, b)
	expected := []int64{19, 22, 43, 50}
	for i, want := range expected {
		if got := out.Data()[i]; got != want {
			t.Errorf("Data()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMatMulInnerDimMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MatMul with mismatched inner dimensions should panic")
		}
	}()
	a := tensor.Zeros[float32](tensor.Shape{2, 3})
	b := tensor.Zeros[float32](tensor.Shape{2, 2})
	MatMul(a, b)
}

func TestMatMulNonMatrixPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MatMul with a rank-1 operand should panic")
		}
	}()
	a := tensor.Zeros[float32](tensor.Shape{6})
	b := tensor.Zeros[float32](tensor.Shape{6})
	MatMul(a, b)
}

// Both kernel paths must produce bit-identical output at the threshold
// boundary. 4x4x4 is the largest shape eligible for the unrolled path; force
// each path and compare bit patterns, not values, so signed zeros count too.
func TestMatMulPathEquivalence(t *testing.T) {
	const m, n, k = 4, 4, 4

	a := make([]float32, m*n)
	b := make([]float32, n*k)
	for i := range a {
		a[i] = 0.1*float32(i) - 0.7
	}
	for i := range b {
		b[i] = 0.3*float32(i%5) - 0.4
	}

	unrolledOut := make([]float32, m*k)
	loopOut := make([]float32, m*k)
	unrolledMatMul[float32](m, n, k)(unrolledOut, a, b)
	loopMatMul[float32](m, n, k)(loopOut, a, b)

	for i := range unrolledOut {
		if math.Float32bits(unrolledOut[i]) != math.Float32bits(loopOut[i]) {
			t.Errorf("paths diverge at %d: unrolled %v, loop %v", i, unrolledOut[i], loopOut[i])
		}
	}
}

// A negative times zero is -0, but the zero-initialized accumulator turns it
// into +0 on both paths. The single-product 1x1x1 shape is the sharpest case.
func TestMatMulSignedZeroAcrossPaths(t *testing.T) {
	a := []float64{-1}
	b := []float64{0}

	unrolledOut := make([]float64, 1)
	loopOut := make([]float64, 1)
	unrolledMatMul[float64](1, 1, 1)(unrolledOut, a, b)
	loopMatMul[float64](1, 1, 1)(loopOut, a, b)

	if math.Float64bits(unrolledOut[0]) != math.Float64bits(loopOut[0]) {
		t.Errorf("paths diverge: unrolled %v (bits %x), loop %v (bits %x)",
			unrolledOut[0], math.Float64bits(unrolledOut[0]),
			loopOut[0], math.Float64bits(loopOut[0]))
	}
	if math.Signbit(unrolledOut[0]) {
		t.Errorf("unrolled path produced -0, want +0")
	}
	if math.Signbit(loopOut[0]) {
		t.Errorf("loop path produced -0, want +0")
	}
}

// Exhaustive cross-path check over every unrollable dimension combination.
func TestMatMulPathEquivalenceAllSmallShapes(t *testing.T) {
	for m := 1; m <= 4; m++ {
		for n := 1; n <= 4; n++ {
			for k := 1; k <= 4; k++ {
				a := make([]float64, m*n)
				b := make([]float64, n*k)
				for i := range a {
					a[i] = 0.17*float64(i) - 1.1
				}
				for i := range b {
					b[i] = 0.23*float64(i) - 0.9
				}

				unrolledOut := make([]float64, m*k)
				loopOut := make([]float64, m*k)
				unrolledMatMul[float64](m, n, k)(unrolledOut, a, b)
				loopMatMul[float64](m, n, k)(loopOut, a, b)

				for i := range unrolledOut {
					if math.Float64bits(unrolledOut[i]) != math.Float64bits(loopOut[i]) {
						t.Errorf("%dx%dx%d: paths diverge at %d: unrolled %v, loop %v",
							m, n, k, i, unrolledOut[i], loopOut[i])
					}
				}
			}
		}
	}
}
