// Package main provides the NN-Meta command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "nnmeta",
		Short: "Fixed-shape tensors with plan-time kernel selection",
		Long: `NN-Meta builds numeric kernels ahead of execution: tensor shapes are fixed
at construction, kernel paths (fully unrolled vs generic loop) are chosen
before the hot path runs, and lazy expressions defer evaluation until an
element is requested.`,
	}
	root.AddCommand(newDemoCmd(), newBenchCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "NN-Meta %s\n", version)
		},
	}
}
