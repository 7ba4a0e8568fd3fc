// Package logistic implements the overflow-safe logistic (inverse-logit)
// transform and its companions.
//
// The naive form 1 / (1 + exp(-x)) hands exp an argument of unbounded
// magnitude. Every function here branches on the sign of x instead, so the
// exponential is only evaluated on non-positive arguments and its result stays
// in (0, 1]:
//
//	x > 0:  e = exp(-x), σ(x) = 1 / (1 + e)
//	x <= 0: e = exp(x),  σ(x) = e / (1 + e)
//
// Both branches agree at x = 0 (exactly 0.5).
package logistic

import (
	"io"
	"math"

	"github.com/born-ml/logistic/internal/scalar"
)

// Float is a float32 or float64 value.
type Float interface {
	~float32 | ~float64
}

// Sigmoid computes σ(x) for any scalar satisfying scalar.Number, delegating the
// exponential to exp.
//
// exp must be the exponential primitive of T (scalar.Exp for plain values,
// dual.Exp for forward-mode values, autodiff.Exp for tape variables); derivative
// information flows through it and through T's arithmetic. pstream is the host
// runtime's diagnostic sink and is never touched; it may be nil.
//
// NaN input takes the second branch and propagates NaN.
func Sigmoid[T scalar.Number[T]](x T, exp func(T) T, pstream io.Writer) T {
	one := x.Lift(1)
	if x.Positive() {
		return one.Div(one.Add(exp(x.Neg())))
	}
	e := exp(x)
	return e.Div(one.Add(e))
}

// Of computes σ(x) for a plain float32 or float64.
//
// float32 inputs are widened for the exponential and rounded once on return.
func Of[F Float](x F) F {
	return F(sigmoid64(float64(x)))
}

func sigmoid64(x float64) float64 {
	if x > 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// Derivative returns dσ/dx = σ(x)(1 - σ(x)).
//
// It is evaluated as e / (1 + e)² with e = exp(-|x|) rather than from σ(x):
// 1 - σ(x) cancels for large positive x. The result is exactly symmetric in x.
func Derivative[F Float](x F) F {
	return F(derivative64(float64(x)))
}

func derivative64(x float64) float64 {
	e := math.Exp(-math.Abs(x))
	d := 1 + e
	return e / (d * d)
}

// SecondDerivative returns d²σ/dx² = σ(x)(1 - σ(x))(1 - 2σ(x)).
//
// With e = exp(-|x|), 1 - 2σ(x) = ±(1 - e)/(1 + e), negative for x > 0.
// 1 - e comes from Expm1 so it keeps full precision near zero.
func SecondDerivative[F Float](x F) F {
	v := float64(x)
	a := math.Abs(v)
	e := math.Exp(-a)
	d := 1 + e
	s := -math.Expm1(-a) / d
	if v > 0 {
		s = -s
	}
	return F(e / (d * d) * s)
}

// Logit is the inverse of σ: log(p / (1 - p)).
//
// Logit(0) = -Inf, Logit(1) = +Inf; p outside [0, 1] yields NaN.
func Logit[F Float](p F) F {
	v := float64(p)
	return F(math.Log(v) - math.Log1p(-v))
}

// LogSigmoid returns log(σ(x)) without forming σ(x) first, so it stays finite
// for large negative x where σ(x) underflows to zero.
func LogSigmoid[F Float](x F) F {
	v := float64(x)
	if v > 0 {
		return F(-math.Log1p(math.Exp(-v)))
	}
	return F(v - math.Log1p(math.Exp(v)))
}
