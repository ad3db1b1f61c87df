package bench

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Kuo-TingKai/NN-meta/tensor"
)

// Reference implementations backed by gonum, used only for cross-comparison
// against the core's kernels. They operate on float64 because that is
// gonum/mat's element type.

// MatMulRef multiplies two rank-2 tensors via gonum's Dense matrices.
func MatMulRef(a, b *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	m, n := a.Shape()[0], a.Shape()[1]
	k := b.Shape()[1]

	ad := mat.NewDense(m, n, a.Data())
	bd := mat.NewDense(n, k, b.Data())

	var c mat.Dense
	c.Mul(ad, bd)
	return tensor.FromSlice(c.RawMatrix().Data, tensor.Shape{m, k})
}

// ReLURef applies the rectifier to a rank-2 tensor via gonum's Apply.
func ReLURef(t *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	rows, cols := t.Shape()[0], t.Shape()[1]
	d := mat.NewDense(rows, cols, t.Data())

	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	}, d)
	return tensor.FromSlice(out.RawMatrix().Data, tensor.Shape{rows, cols})
}

// AffineRef computes w·x + bias via gonum's vector operations.
func AffineRef(w *tensor.Tensor[float64], bias, x *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	out, in := w.Shape()[0], w.Shape()[1]

	wd := mat.NewDense(out, in, w.Data())
	xv := mat.NewVecDense(in, x.Data())
	bv := mat.NewVecDense(out, bias.Data())

	var y mat.VecDense
	y.MulVec(wd, xv)
	y.AddVec(&y, bv)
	return tensor.FromSlice(y.RawVector().Data, tensor.Shape{out})
}
