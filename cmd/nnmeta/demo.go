package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Kuo-TingKai/NN-meta/expr"
	"github.com/Kuo-TingKai/NN-meta/kernel"
	"github.com/Kuo-TingKai/NN-meta/nn"
	"github.com/Kuo-TingKai/NN-meta/tensor"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through tensors, lazy expressions, kernels and layers",
		Run: func(cmd *cobra.Command, _ []string) {
			runDemo(cmd.OutOrStdout())
		},
	}
}

func printValues[T tensor.DType](w io.Writer, name string, t *tensor.Tensor[T]) {
	fmt.Fprintf(w, "%s = [", name)
	for i, v := range t.Data() {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%v", v)
	}
	fmt.Fprintln(w, "]")
}

func runDemo(w io.Writer) {
	fmt.Fprintln(w, "=== NN-Meta Demo ===")

	// 1. Fixed-shape tensors.
	fmt.Fprintln(w, "\n1. Fixed-shape tensors")
	a := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	fmt.Fprintln(w, a)
	fmt.Fprintf(w, "shape: %s  size: %d  rank: %d\n", a.Shape(), a.Size(), a.Rank())
	fmt.Fprintf(w, "a(0, 0) = %v, a(1, 2) = %v\n", a.At(0, 0), a.At(1, 2))

	// 2. Lazy expressions: nothing materializes until an element is read.
	fmt.Fprintln(w, "\n2. Lazy expressions")
	x := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	y := tensor.FromSlice([]float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	printValues(w, "x", x)
	printValues(w, "y", y)
	sum := expr.Add(expr.Wrap(x), expr.Wrap(y))
	printValues(w, "x + y", expr.Materialize(sum, tensor.Shape{2, 2}))
	printValues(w, "2 * x", expr.Materialize(expr.Scale(2, expr.Wrap(x)), tensor.Shape{2, 2}))

	// 3. Plan-time matmul kernel (2x3x2 takes the unrolled path).
	fmt.Fprintln(w, "\n3. Matrix multiplication")
	b := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	printValues(w, "A (2x3)", a)
	printValues(w, "B (3x2)", b)
	printValues(w, "A @ B (2x2)", kernel.MatMul(a, b))

	// 4. Rectifier.
	fmt.Fprintln(w, "\n4. ReLU activation")
	input := tensor.FromSlice([]float32{-2, -1, 0, 1, 2, 3}, tensor.Shape{6})
	printValues(w, "input", input)
	printValues(w, "relu(input)", kernel.ReLU(input))

	// 5. Affine layer, 3 inputs -> 2 outputs.
	fmt.Fprintln(w, "\n5. Affine layer")
	layer := nn.NewLinearFrom(
		tensor.FromSlice([]float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, tensor.Shape{2, 3}),
		tensor.FromSlice([]float32{0.1, 0.2}, tensor.Shape{2}),
	)
	layerIn := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
	printValues(w, "input", layerIn)
	printValues(w, "output", layer.Forward(layerIn))

	// 6. Shape comparison.
	fmt.Fprintln(w, "\n6. Shape validation")
	s1 := tensor.Zeros[float32](tensor.Shape{2, 3})
	s2 := tensor.Zeros[float32](tensor.Shape{2, 3})
	s3 := tensor.Zeros[float32](tensor.Shape{3, 2})
	fmt.Fprintf(w, "[2, 3] matches [2, 3]: %v\n", kernel.ShapesMatch(s1, s2))
	fmt.Fprintf(w, "[2, 3] matches [3, 2]: %v\n", kernel.ShapesMatch(s1, s3))
}
