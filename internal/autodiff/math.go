package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Add returns s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return apply(ops.AddOp{}, s, other)
}

// Mul returns s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return apply(ops.MulOp{}, s, other)
}

// Pow returns s^exponent. The exponent is a constant and receives no gradient.
func (s *Scalar) Pow(exponent float64) *Scalar {
	return apply(ops.NewPowOp(exponent), s)
}

// AddConst returns s + c, with c wrapped in a new leaf.
func (s *Scalar) AddConst(c float64) *Scalar {
	return s.Add(New(c))
}

// MulConst returns s * c, with c wrapped in a new leaf.
func (s *Scalar) MulConst(c float64) *Scalar {
	return s.Mul(New(c))
}

// Neg returns -s, computed as s * -1.
func (s *Scalar) Neg() *Scalar {
	return s.MulConst(-1)
}

// Sub returns s - other, computed as s + (-other).
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return s.Add(other.Neg())
}

// Div returns s / other, computed as s * other^-1.
// Division by zero is not checked and yields ±Inf or NaN.
func (s *Scalar) Div(other *Scalar) *Scalar {
	return s.Mul(other.Pow(-1))
}

// Sum adds xs left to right: ((xs[0] + xs[1]) + xs[2]) + ...
// A single element is returned as is. Sum panics if xs is empty.
func Sum(xs ...*Scalar) *Scalar {
	if len(xs) == 0 {
		panic("autodiff: Sum of no values")
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = acc.Add(x)
	}
	return acc
}
