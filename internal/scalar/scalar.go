// Package scalar defines the numeric capability set shared by plain and
// derivative-carrying scalars.
//
// A type satisfies Number when it supports the handful of operations the
// logistic transforms need: addition, division, unary negation, a sign test,
// and lifting a float64 constant into its own representation. The exponential
// is deliberately absent; callers pass it alongside the value so that each
// numeric representation supplies its own differentiable exp.
package scalar

import "math"

// Number is the capability constraint for scalars used by generic transforms.
//
// T is the concrete type itself (F-bounded), e.g. Real satisfies Number[Real].
type Number[T any] interface {
	// Add returns the sum of the receiver and o.
	Add(o T) T

	// Div returns the receiver divided by o.
	Div(o T) T

	// Neg returns the additive inverse of the receiver.
	Neg() T

	// Positive reports whether the primal value is strictly greater than zero.
	// NaN is not positive.
	Positive() bool

	// Lift converts a constant into T. Implementations that carry context
	// (e.g. a gradient tape) attach the constant to the receiver's context.
	Lift(c float64) T
}

// Real is a plain float64 scalar without derivative information.
type Real float64

// Add returns r + o.
func (r Real) Add(o Real) Real { return r + o }

// Div returns r / o.
func (r Real) Div(o Real) Real { return r / o }

// Neg returns -r.
func (r Real) Neg() Real { return -r }

// Positive reports whether r > 0.
func (r Real) Positive() bool { return r > 0 }

// Lift returns c as a Real.
func (r Real) Lift(c float64) Real { return Real(c) }

// Exp is the exponential primitive for Real.
func Exp(r Real) Real {
	return Real(math.Exp(float64(r)))
}
