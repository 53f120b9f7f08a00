package main

import (
	"fmt"
	"io"

	"github.com/born-ml/micrograd/autodiff"
)

// runExpr differentiates f = a*b + c at a=2, b=-3, c=10.
func runExpr(w io.Writer) error {
	a := autodiff.New(2.0)
	b := autodiff.New(-3.0)
	c := autodiff.New(10.0)
	e := a.Mul(b)
	f := e.Add(c)

	f.Backward()

	for _, v := range []struct {
		name string
		node *autodiff.Scalar
	}{{"a", a}, {"b", b}, {"c", c}, {"e", e}, {"f", f}} {
		fmt.Fprintf(w, "%s = %v\n", v.name, v.node)
	}
	return nil
}
