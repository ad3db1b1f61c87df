package kernel

import (
	"math"
	"testing"
)

func TestMatVecAffineExample(t *testing.T) {
	// weight [2, 3], bias [2], input [3] -> [1.5, 3.4]
	w := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	x := []float32{1, 2, 3}
	bias := []float32{0.1, 0.2}

	dst := make([]float32, 2)
	PlanMatVec[float32](2, 3)(dst, w, x, bias)

	expected := []float32{1.5, 3.4}
	for i, want := range expected {
		if diff := dst[i] - want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestMatVecLoopPath(t *testing.T) {
	// 5 outputs exceeds the unroll threshold.
	const out, in = 5, 3
	w := make([]float64, out*in)
	for i := range w {
		w[i] = float64(i + 1)
	}
	x := []float64{1, 0, -1}
	bias := []float64{10, 20, 30, 40, 50}

	dst := make([]float64, out)
	PlanMatVec[float64](out, in)(dst, w, x, bias)

	// dst[i] = w[i*3] - w[i*3+2] + bias[i] = -2 + bias[i]
	expected := []float64{8, 18, 28, 38, 48}
	for i, want := range expected {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

// 4x4 is the boundary shape for the unrolled path; force each path and
// compare bit patterns.
func TestMatVecPathEquivalence(t *testing.T) {
	const out, in = 4, 4

	w := make([]float32, out*in)
	x := make([]float32, in)
	bias := make([]float32, out)
	for i := range w {
		w[i] = 0.11*float32(i) - 0.8
	}
	for i := range x {
		x[i] = 0.37*float32(i) - 0.5
	}
	for i := range bias {
		bias[i] = 0.05 * float32(i)
	}

	unrolledOut := make([]float32, out)
	loopOut := make([]float32, out)
	unrolledMatVec[float32](out, in)(unrolledOut, w, x, bias)
	loopMatVec[float32](out, in)(loopOut, w, x, bias)

	for i := range unrolledOut {
		if math.Float32bits(unrolledOut[i]) != math.Float32bits(loopOut[i]) {
			t.Errorf("paths diverge at %d: unrolled %v, loop %v", i, unrolledOut[i], loopOut[i])
		}
	}
}

// A zero weight row against a negative input with a -0 bias is the signed
// zero corner for the affine kernel: both paths must settle on +0.
func TestMatVecSignedZeroAcrossPaths(t *testing.T) {
	w := []float64{0}
	x := []float64{-1}
	bias := []float64{math.Copysign(0, -1)}

	unrolledOut := make([]float64, 1)
	loopOut := make([]float64, 1)
	unrolledMatVec[float64](1, 1)(unrolledOut, w, x, bias)
	loopMatVec[float64](1, 1)(loopOut, w, x, bias)

	if math.Float64bits(unrolledOut[0]) != math.Float64bits(loopOut[0]) {
		t.Errorf("paths diverge: unrolled %v (bits %x), loop %v (bits %x)",
			unrolledOut[0], math.Float64bits(unrolledOut[0]),
			loopOut[0], math.Float64bits(loopOut[0]))
	}
	if math.Signbit(unrolledOut[0]) || math.Signbit(loopOut[0]) {
		t.Errorf("signed zero leaked through: unrolled %v, loop %v", unrolledOut[0], loopOut[0])
	}
}
