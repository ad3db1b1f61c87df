package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kuo-TingKai/NN-meta/kernel"
	"github.com/Kuo-TingKai/NN-meta/nn"
	"github.com/Kuo-TingKai/NN-meta/tensor"
)

func TestRunCountsInvocations(t *testing.T) {
	calls := 0
	s := Run("counting", func() { calls++ }, 5, 3)

	assert.Equal(t, 8, calls) // 3 warmup + 5 timed
	assert.Equal(t, 5, s.Iterations())
	assert.Equal(t, "counting", s.Name())
}

func TestStatsMath(t *testing.T) {
	s := &Stats{name: "synthetic", times: []float64{1, 2, 3, 4, 10}}

	assert.InDelta(t, 4.0, s.Mean(), 1e-9)
	assert.InDelta(t, 3.0, s.Median(), 1e-9)
	assert.InDelta(t, 1.0, s.Min(), 1e-9)
	assert.InDelta(t, 10.0, s.Max(), 1e-9)
	// Population stddev of {1,2,3,4,10} around mean 4.
	assert.InDelta(t, 3.1623, s.StdDev(), 1e-3)
}

func TestStatsMedianEvenCount(t *testing.T) {
	s := &Stats{name: "even", times: []float64{4, 1, 3, 2}}
	assert.InDelta(t, 2.5, s.Median(), 1e-9)
}

func TestStatsEmpty(t *testing.T) {
	s := &Stats{name: "empty"}
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.Min())
	assert.Zero(t, s.Max())
}

func TestResultConversion(t *testing.T) {
	s := &Stats{name: "op", times: []float64{2, 4}}
	r := s.Result("MatMul (4x4)", "NN-Meta")

	assert.Equal(t, "MatMul (4x4)", r.Operation)
	assert.Equal(t, "NN-Meta", r.Framework)
	assert.InDelta(t, 3.0, r.MeanUS, 1e-9)
	assert.Equal(t, 2, r.Iterations)
}

func TestComparisonTableContainsRows(t *testing.T) {
	results := []Result{
		{Operation: "MatMul (4x4)", Framework: "NN-Meta", MeanUS: 1.5, MedianUS: 1.4, StdDevUS: 0.1, Iterations: 1000},
		{Operation: "MatMul (4x4)", Framework: "gonum", MeanUS: 3.0, MedianUS: 2.9, StdDevUS: 0.2, Iterations: 1000},
	}

	out := ComparisonTable(results)
	assert.Contains(t, out, "Operation")
	assert.Contains(t, out, "NN-Meta")
	assert.Contains(t, out, "gonum")
	assert.Contains(t, out, "1,000")
}

func TestSpeedupAnalysis(t *testing.T) {
	results := []Result{
		{Operation: "MatMul (4x4)", Framework: "NN-Meta", MeanUS: 2},
		{Operation: "MatMul (4x4)", Framework: "gonum", MeanUS: 4},
		{Operation: "ReLU (16)", Framework: "NN-Meta", MeanUS: 1},
		{Operation: "ReLU (16)", Framework: "gonum", MeanUS: 0.5},
	}

	out := SpeedupAnalysis(results, "NN-Meta")

	assert.Contains(t, out, "MatMul (4x4):")
	assert.Contains(t, out, "gonum vs NN-Meta: 2.00x slower")
	assert.Contains(t, out, "gonum vs NN-Meta: 0.50x faster")
	// The baseline itself never appears as a comparison row.
	assert.NotContains(t, out, "NN-Meta vs NN-Meta")
}

func TestSpeedupAnalysisEqualMeans(t *testing.T) {
	results := []Result{
		{Operation: "ReLU (16)", Framework: "NN-Meta", MeanUS: 2},
		{Operation: "ReLU (16)", Framework: "gonum", MeanUS: 2},
	}
	out := SpeedupAnalysis(results, "NN-Meta")
	assert.Contains(t, out, "gonum vs NN-Meta: 1.00x as fast")
}

func TestSpeedupAnalysisSkipsMissingBaseline(t *testing.T) {
	results := []Result{
		{Operation: "MatMul (4x4)", Framework: "gonum", MeanUS: 4},
	}
	out := SpeedupAnalysis(results, "NN-Meta")
	assert.Equal(t, "", strings.TrimSpace(out))
}

// The gonum-backed references must agree with the core's kernels; they are
// the cross-check the comparison suite relies on.

func TestMatMulRefMatchesKernel(t *testing.T) {
	a := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})

	got := MatMulRef(a, b)
	want := kernel.MatMul(a, b)

	require.True(t, got.Shape().Equal(want.Shape()))
	for i := range want.Data() {
		assert.InDelta(t, want.Data()[i], got.Data()[i], 1e-12)
	}
}

func TestReLURefMatchesKernel(t *testing.T) {
	in := tensor.FromSlice([]float64{-2, -1, 0, 1, 2, 3}, tensor.Shape{2, 3})

	got := ReLURef(in)
	want := kernel.ReLU(in)

	assert.Equal(t, want.Data(), got.Data())
}

func TestAffineRefMatchesLayer(t *testing.T) {
	w := tensor.FromSlice([]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, tensor.Shape{2, 3})
	bias := tensor.FromSlice([]float64{0.1, 0.2}, tensor.Shape{2})
	x := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})

	got := AffineRef(w, bias, x)
	want := nn.NewLinearFrom(w, bias).Forward(x)

	require.True(t, got.Shape().Equal(want.Shape()))
	for i := range want.Data() {
		assert.InDelta(t, want.Data()[i], got.Data()[i], 1e-12)
	}
}
