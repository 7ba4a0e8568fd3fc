// Package dual implements forward-mode automatic differentiation with dual
// and hyper-dual numbers.
//
// Dual carries a value and its first derivative (x + x'ε, ε² = 0).
// HyperDual carries two independent infinitesimals (ε1² = ε2² = 0, ε1ε2 ≠ 0),
// which yields exact first and second derivatives in one evaluation.
//
// Both types satisfy scalar.Number, so generic transforms accept them directly:
//
//	y := logistic.Sigmoid(dual.Variable(0), dual.Exp, nil)
//	y.Der // 0.25
package dual

import "math"

// Dual is a value paired with its derivative along one direction.
type Dual struct {
	Val float64 // Primal value.
	Der float64 // Derivative with respect to the seeded input.
}

// Variable returns a Dual seeded for differentiation (Der = 1).
func Variable(x float64) Dual {
	return Dual{Val: x, Der: 1}
}

// Constant returns a Dual with zero derivative.
func Constant(c float64) Dual {
	return Dual{Val: c}
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual {
	return Dual{Val: d.Val + o.Val, Der: d.Der + o.Der}
}

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual {
	return Dual{Val: d.Val - o.Val, Der: d.Der - o.Der}
}

// Mul returns d * o.
func (d Dual) Mul(o Dual) Dual {
	return Dual{Val: d.Val * o.Val, Der: d.Der*o.Val + d.Val*o.Der}
}

// Div returns d / o.
//
// Quotient rule written as (d' - q·o') / o so the quotient is reused.
func (d Dual) Div(o Dual) Dual {
	q := d.Val / o.Val
	return Dual{Val: q, Der: (d.Der - q*o.Der) / o.Val}
}

// Neg returns -d.
func (d Dual) Neg() Dual {
	return Dual{Val: -d.Val, Der: -d.Der}
}

// Positive reports whether the primal value is > 0.
func (d Dual) Positive() bool {
	return d.Val > 0
}

// Lift returns c as a constant Dual.
func (d Dual) Lift(c float64) Dual {
	return Constant(c)
}

// IsNaN reports whether the primal value is NaN.
func (d Dual) IsNaN() bool {
	return math.IsNaN(d.Val)
}

// Exp is the exponential primitive for Dual: d(exp(x)) = exp(x)·dx.
func Exp(d Dual) Dual {
	e := math.Exp(d.Val)
	if d.Der == 0 {
		return Dual{Val: e}
	}
	return Dual{Val: e, Der: e * d.Der}
}
