package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/Kuo-TingKai/NN-meta/bench"
	"github.com/Kuo-TingKai/NN-meta/kernel"
	"github.com/Kuo-TingKai/NN-meta/nn"
	"github.com/Kuo-TingKai/NN-meta/tensor"
)

// sink keeps benchmark results observable so the loops cannot be elided.
var sink float64

func newBenchCmd() *cobra.Command {
	var iterations, warmup int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the kernels against gonum references",
		Run: func(cmd *cobra.Command, _ []string) {
			runBench(cmd.OutOrStdout(), iterations, warmup)
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 1000, "timed iterations per benchmark")
	cmd.Flags().IntVar(&warmup, "warmup", 100, "untimed warmup iterations per benchmark")
	return cmd
}

func randomTensor(shape tensor.Shape) *tensor.Tensor[float64] {
	t := tensor.Zeros[float64](shape)
	data := t.Data()
	for i := range data {
		data[i] = rand.Float64()*2 - 1
	}
	return t
}

func runBench(w io.Writer, iterations, warmup int) {
	var results []bench.Result

	// Matrix multiply: 4x4 takes the unrolled path, 32x32 the loop path.
	for _, size := range []int{4, 32} {
		op := fmt.Sprintf("MatMul (%dx%d)", size, size)
		a := randomTensor(tensor.Shape{size, size})
		b := randomTensor(tensor.Shape{size, size})

		kern := kernel.PlanMatMul[float64](size, size, size)
		dst := make([]float64, size*size)
		s := bench.Run(op+" - NN-Meta", func() {
			kern(dst, a.Data(), b.Data())
			sink += dst[0]
		}, iterations, warmup)
		results = append(results, s.Result(op, "NN-Meta"))

		s = bench.Run(op+" - gonum", func() {
			out := bench.MatMulRef(a, b)
			sink += out.At(0, 0)
		}, iterations, warmup)
		results = append(results, s.Result(op, "gonum"))
	}

	// Rectifier: 16 elements unrolled, 1024 looped.
	for _, size := range []int{16, 1024} {
		op := fmt.Sprintf("ReLU (%d)", size)
		in := randomTensor(tensor.Shape{size / 4, 4})

		kern := kernel.PlanReLU[float64](size)
		dst := make([]float64, size)
		s := bench.Run(op+" - NN-Meta", func() {
			kern(dst, in.Data())
			sink += dst[0]
		}, iterations, warmup)
		results = append(results, s.Result(op, "NN-Meta"))

		s = bench.Run(op+" - gonum", func() {
			out := bench.ReLURef(in)
			sink += out.Data()[0]
		}, iterations, warmup)
		results = append(results, s.Result(op, "gonum"))
	}

	// Affine forward: 4->4 unrolled, 128->64 looped.
	for _, dims := range [][2]int{{4, 4}, {128, 64}} {
		in, out := dims[0], dims[1]
		op := fmt.Sprintf("Affine (%d->%d)", in, out)

		weight := randomTensor(tensor.Shape{out, in})
		biasT := randomTensor(tensor.Shape{out})
		x := randomTensor(tensor.Shape{in})
		layer := nn.NewLinearFrom(weight, biasT)

		s := bench.Run(op+" - NN-Meta", func() {
			y := layer.Forward(x)
			sink += y.At(0)
		}, iterations, warmup)
		results = append(results, s.Result(op, "NN-Meta"))

		s = bench.Run(op+" - gonum", func() {
			y := bench.AffineRef(weight, biasT, x)
			sink += y.At(0)
		}, iterations, warmup)
		results = append(results, s.Result(op, "gonum"))
	}

	fmt.Fprintln(w, bench.ComparisonTable(results))
	fmt.Fprintln(w, "Speedup analysis (baseline: NN-Meta):")
	fmt.Fprint(w, bench.SpeedupAnalysis(results, "NN-Meta"))
	_ = sink
}
