// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package logistic provides the overflow-safe logistic (inverse-logit) transform.
//
// # Overview
//
// σ(x) = 1 / (1 + exp(-x)) is evaluated by branching on the sign of x so the
// exponential only ever sees a non-positive argument:
//
//	x > 0:  σ(x) = 1 / (1 + exp(-x))
//	x <= 0: σ(x) = exp(x) / (1 + exp(x))
//
// The result never overflows: σ(1e10) = 1, σ(-1e10) = 0, σ(0) = 0.5 exactly,
// and NaN propagates.
//
// # Plain values
//
//	y := logistic.Of(2.0)          // 0.8807970779778823
//	d := logistic.Derivative(2.0)  // y(1-y)
//
// # Derivative-carrying values
//
// Sigmoid is generic over any scalar.Number and takes the exponential primitive
// of that type, so derivatives propagate through the same operations:
//
//	y := logistic.Sigmoid(dual.Variable(0), dual.Exp, nil)
//	y.Der // 0.25
//
//	tape := autodiff.NewGradientTape()
//	tape.StartRecording()
//	x := tape.Variable(0)
//	tape.Backward(logistic.Sigmoid(x, autodiff.Exp, nil)).Of(x) // 0.25
//
// The last argument is a diagnostic stream kept for call compatibility with
// model runtimes; it is never used and may be nil.
//
// # Slices
//
// Apply and ApplyDerivative evaluate whole slices, splitting the work across
// goroutines according to a Config.
//
// All functions are pure and safe for concurrent use.
package logistic
