// Package main provides the micrograd demo CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		printVersion(os.Stdout)
	case "expr":
		err = runExpr(os.Stdout)
	case "mlp":
		err = runMLP(os.Stdout, os.Args[2:])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar autodiff and MLP demo")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version and host CPU")
	fmt.Fprintln(w, "  expr       Differentiate f = a*b + c")
	fmt.Fprintln(w, "  mlp        Run an MLP over the XOR inputs and print parameter gradients")
}
