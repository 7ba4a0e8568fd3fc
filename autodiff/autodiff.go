// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation for scalars.
//
// A GradientTape records operations performed on its Vars; Backward walks the
// recorded operations in reverse to compute gradients.
//
// Example:
//
//	import (
//	    "github.com/born-ml/logistic/autodiff"
//	    "github.com/born-ml/logistic/logistic"
//	)
//
//	func main() {
//	    tape := autodiff.NewGradientTape()
//	    tape.StartRecording()
//
//	    x := tape.Variable(0)
//	    y := logistic.Sigmoid(x, autodiff.Exp, nil)
//
//	    grads := tape.Backward(y)
//	    grads.Of(x) // 0.25
//	}
package autodiff

import (
	"github.com/born-ml/logistic/internal/autodiff"
)

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// Var is a scalar node on a GradientTape.
type Var = autodiff.Var

// Gradients holds the result of a backward pass.
type Gradients = autodiff.Gradients

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// Exp is the exponential primitive for tape variables.
func Exp(v Var) Var {
	return autodiff.Exp(v)
}

// Sigmoid records σ(v) as a single fused operation.
func Sigmoid(v Var) Var {
	return autodiff.Sigmoid(v)
}
