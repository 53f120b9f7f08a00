package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidConfig = errors.New("invalid network configuration")
	ErrArityMismatch = errors.New("arity mismatch")
)

// ArityError reports an input count that does not match what a component expects.
type ArityError struct {
	Component string // Component that rejected the input (e.g., "layer1.neuron0")
	Expected  int    // Number of inputs the component takes
	Got       int    // Number of inputs supplied
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected %d inputs, got %d", e.Component, e.Expected, e.Got)
}

// Unwrap makes errors.Is(err, ErrArityMismatch) hold.
func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}

// checkArity panics with an *ArityError when got != expected.
func checkArity(component string, expected, got int) {
	if expected != got {
		panic(&ArityError{Component: component, Expected: expected, Got: got})
	}
}
