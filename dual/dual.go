// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation with dual and
// hyper-dual numbers.
//
// Example:
//
//	y := logistic.Sigmoid(dual.Variable(1), dual.Exp, nil)
//	y.Der // σ'(1)
//
//	h := logistic.Sigmoid(dual.HyperVariable(1), dual.HyperExp, nil)
//	h.Second() // σ''(1)
package dual

import (
	"github.com/born-ml/logistic/internal/dual"
)

// Dual is a value paired with its first derivative.
type Dual = dual.Dual

// HyperDual carries first and second derivatives.
type HyperDual = dual.HyperDual

// Variable returns a Dual seeded for differentiation.
func Variable(x float64) Dual {
	return dual.Variable(x)
}

// Constant returns a Dual with zero derivative.
func Constant(c float64) Dual {
	return dual.Constant(c)
}

// Exp is the exponential primitive for Dual.
func Exp(d Dual) Dual {
	return dual.Exp(d)
}

// HyperVariable returns a HyperDual seeded for first and second derivatives.
func HyperVariable(x float64) HyperDual {
	return dual.HyperVariable(x)
}

// HyperConstant returns a HyperDual with zero infinitesimal parts.
func HyperConstant(c float64) HyperDual {
	return dual.HyperConstant(c)
}

// HyperExp is the exponential primitive for HyperDual.
func HyperExp(h HyperDual) HyperDual {
	return dual.HyperExp(h)
}
