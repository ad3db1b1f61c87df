//go:build ignore

// gen_kernels.go emits the fully-unrolled kernel variants and their dispatch
// functions (the zz_generated_*.go files). Each variant is straight-line
// code with one independent accumulation per output element; every sum
// starts from a literal zero and its terms are ordered ascending, so the
// floating-point result is bit-identical to the loop kernels, signed zeros
// included.
//
// Run via: go generate ./internal/kernel
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	matMulUnrollMax = 4
	reluUnrollMax   = 16
)

const header = "// Code generated by gen_kernels.go. DO NOT EDIT.\n\npackage kernel\n"

const tensorImport = "\nimport \"github.com/Kuo-TingKai/NN-meta/internal/tensor\"\n"

func main() {
	write("zz_generated_matmul.go", genMatMul())
	write("zz_generated_matvec.go", genMatVec())
	write("zz_generated_relu.go", genReLU())
}

func write(name, content string) {
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		log.Fatalf("writing %s: %v", name, err)
	}
}

func genMatMul() string {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(tensorImport)

	buf.WriteString(`
// unrolledMatMul returns the fully-unrolled kernel for an m×n by n×k
// product. All dimensions must be in [1, 4].
func unrolledMatMul[T tensor.DType](m, n, k int) MatMulKernel[T] {
	switch [3]int{m, n, k} {
`)
	for m := 1; m <= matMulUnrollMax; m++ {
		for n := 1; n <= matMulUnrollMax; n++ {
			for k := 1; k <= matMulUnrollMax; k++ {
				fmt.Fprintf(&buf, "\tcase [3]int{%d, %d, %d}:\n\t\treturn matMul%dx%dx%d[T]\n", m, n, k, m, n, k)
			}
		}
	}
	buf.WriteString("\tdefault:\n\t\tpanic(\"kernel: no unrolled matmul variant for these dimensions\")\n\t}\n}\n")

	for m := 1; m <= matMulUnrollMax; m++ {
		for n := 1; n <= matMulUnrollMax; n++ {
			for k := 1; k <= matMulUnrollMax; k++ {
				fmt.Fprintf(&buf, "\nfunc matMul%dx%dx%d[T tensor.DType](dst, a, b []T) {\n", m, n, k)
				for i := 0; i < m; i++ {
					for j := 0; j < k; j++ {
						// The leading 0 mirrors the loop kernel's
						// zero-initialized accumulator.
						terms := make([]string, 0, n+1)
						terms = append(terms, "0")
						for p := 0; p < n; p++ {
							terms = append(terms, fmt.Sprintf("a[%d]*b[%d]", i*n+p, p*k+j))
						}
						fmt.Fprintf(&buf, "\tdst[%d] = %s\n", i*k+j, strings.Join(terms, " + "))
					}
				}
				buf.WriteString("}\n")
			}
		}
	}
	return buf.String()
}

func genMatVec() string {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(tensorImport)

	buf.WriteString(`
// unrolledMatVec returns the fully-unrolled kernel for an out×in affine
// transform. Both dimensions must be in [1, 4].
func unrolledMatVec[T tensor.DType](out, in int) MatVecKernel[T] {
	switch [2]int{out, in} {
`)
	for out := 1; out <= matMulUnrollMax; out++ {
		for in := 1; in <= matMulUnrollMax; in++ {
			fmt.Fprintf(&buf, "\tcase [2]int{%d, %d}:\n\t\treturn matVec%dx%d[T]\n", out, in, out, in)
		}
	}
	buf.WriteString("\tdefault:\n\t\tpanic(\"kernel: no unrolled matvec variant for these dimensions\")\n\t}\n}\n")

	for out := 1; out <= matMulUnrollMax; out++ {
		for in := 1; in <= matMulUnrollMax; in++ {
			fmt.Fprintf(&buf, "\nfunc matVec%dx%d[T tensor.DType](dst, w, x, bias []T) {\n", out, in)
			for i := 0; i < out; i++ {
				terms := make([]string, 0, in+2)
				terms = append(terms, "0")
				for j := 0; j < in; j++ {
					terms = append(terms, fmt.Sprintf("x[%d]*w[%d]", j, i*in+j))
				}
				terms = append(terms, fmt.Sprintf("bias[%d]", i))
				fmt.Fprintf(&buf, "\tdst[%d] = %s\n", i, strings.Join(terms, " + "))
			}
			buf.WriteString("}\n")
		}
	}
	return buf.String()
}

func genReLU() string {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString(tensorImport)

	buf.WriteString(`
// unrolledReLU returns the fully-unrolled rectifier kernel for the given
// flat element count, which must be in [1, 16].
func unrolledReLU[T tensor.DType](size int) ReLUKernel[T] {
	switch size {
`)
	for size := 1; size <= reluUnrollMax; size++ {
		fmt.Fprintf(&buf, "\tcase %d:\n\t\treturn relu%d[T]\n", size, size)
	}
	buf.WriteString("\tdefault:\n\t\tpanic(\"kernel: no unrolled relu variant for this size\")\n\t}\n}\n")

	for size := 1; size <= reluUnrollMax; size++ {
		fmt.Fprintf(&buf, "\nfunc relu%d[T tensor.DType](dst, src []T) {\n", size)
		for i := 0; i < size; i++ {
			fmt.Fprintf(&buf, "\tdst[%d] = rectify(src[%d])\n", i, i)
		}
		buf.WriteString("}\n")
	}
	return buf.String()
}
