package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
)

// xorInputs and xorTargets are the four XOR samples.
var (
	xorInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorTargets = []float64{0, 1, 1, 0}
)

// runMLP evaluates an MLP over the XOR samples, sums the squared errors and
// backpropagates the sum to every parameter.
func runMLP(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("mlp", flag.ContinueOnError)
	fs.SetOutput(w)
	seed := fs.Int64("seed", 42, "Seed for parameter initialization")
	sizes := fs.String("sizes", "3,3,1", "Comma-separated layer sizes; the last is the output size")
	hidden := fs.String("hidden", "tanh", "Hidden layer activation (linear, tanh, relu, sigmoid)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	layerSizes, err := parseSizes(*sizes)
	if err != nil {
		return err
	}
	activation, err := nn.ParseActivation(*hidden)
	if err != nil {
		return err
	}

	cfg := nn.DefaultConfig(len(xorInputs[0]), layerSizes...)
	cfg.Seed = *seed
	cfg.Hidden = activation

	model, err := nn.NewMLP(cfg)
	if err != nil {
		return err
	}

	terms := make([]*autodiff.Scalar, len(xorInputs))
	for i, x := range xorInputs {
		out := model.Forward([]*autodiff.Scalar{autodiff.New(x[0]), autodiff.New(x[1])})
		fmt.Fprintf(w, "x=%v target=%v out=%.6f\n", x, xorTargets[i], out[0].Data())
		terms[i] = out[0].Sub(autodiff.New(xorTargets[i])).Pow(2)
	}
	total := autodiff.Sum(terms...)
	total.Backward()

	fmt.Fprintf(w, "squared error: %.6f\n", total.Data())
	fmt.Fprintf(w, "parameters: %d\n", len(model.Parameters()))
	for _, p := range model.Parameters() {
		fmt.Fprintf(w, "  %-20s data=%+.6f grad=%+.6f\n", p.Name(), p.Data(), p.Grad())
	}
	return nil
}

// parseSizes parses "3,3,1" into []int{3, 3, 1}.
func parseSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", f, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
