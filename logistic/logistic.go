// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package logistic

import (
	"io"

	"github.com/born-ml/logistic/internal/logistic"
	"github.com/born-ml/logistic/internal/parallel"
	"github.com/born-ml/logistic/internal/scalar"
)

// Number is the capability constraint for scalars accepted by Sigmoid.
type Number[T any] = scalar.Number[T]

// Real is a plain float64 scalar satisfying Number.
type Real = scalar.Real

// Float is a float32 or float64 value.
type Float = logistic.Float

// Config controls how Apply splits work across goroutines.
type Config = parallel.Config

// ErrLengthMismatch is returned by Apply when dst and src differ in length.
var ErrLengthMismatch = logistic.ErrLengthMismatch

// Sigmoid computes σ(x) for any Number, using exp as the exponential primitive.
// pstream is never read or written.
func Sigmoid[T Number[T]](x T, exp func(T) T, pstream io.Writer) T {
	return logistic.Sigmoid(x, exp, pstream)
}

// Exp is the exponential primitive for Real.
func Exp(x Real) Real {
	return scalar.Exp(x)
}

// Of computes σ(x) for a float32 or float64.
func Of[F Float](x F) F {
	return logistic.Of(x)
}

// Derivative returns σ(x)(1 - σ(x)).
func Derivative[F Float](x F) F {
	return logistic.Derivative(x)
}

// SecondDerivative returns σ(x)(1 - σ(x))(1 - 2σ(x)).
func SecondDerivative[F Float](x F) F {
	return logistic.SecondDerivative(x)
}

// Logit returns log(p / (1 - p)), the inverse of σ.
func Logit[F Float](p F) F {
	return logistic.Logit(p)
}

// LogSigmoid returns log(σ(x)) without underflow.
func LogSigmoid[F Float](x F) F {
	return logistic.LogSigmoid(x)
}

// DefaultConfig returns a Config sized to the number of CPUs.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Apply writes σ(src[i]) into dst[i].
func Apply[F Float](dst, src []F, cfg Config) error {
	return logistic.Apply(dst, src, cfg)
}

// ApplyDerivative writes σ'(src[i]) into dst[i].
func ApplyDerivative[F Float](dst, src []F, cfg Config) error {
	return logistic.ApplyDerivative(dst, src, cfg)
}
