// Package autodiff implements reverse-mode automatic differentiation for
// scalars using a gradient tape.
//
// Architecture:
//   - GradientTape: stores node values and records operations during the forward pass
//   - Var: a handle to a node; its arithmetic methods compute and record
//   - Operation interface (ops package): each op implements its backward pass
//   - Backward: walks the tape in reverse applying the chain rule
//
// Var satisfies scalar.Number, so generic transforms run on the tape directly:
//
//	tape := autodiff.NewGradientTape()
//	tape.StartRecording()
//	x := tape.Variable(0)
//	y := logistic.Sigmoid(x, autodiff.Exp, nil)
//	tape.Backward(y).Of(x) // 0.25
package autodiff

import (
	"math"

	"github.com/born-ml/logistic/internal/autodiff/ops"
	"github.com/born-ml/logistic/internal/logistic"
)

// Var is a scalar node on a GradientTape.
//
// The zero Var is not usable; obtain one from GradientTape.Variable.
type Var struct {
	tape *GradientTape
	id   int
	gen  int
}

// Value returns the forward value of v.
func (v Var) Value() float64 {
	return v.tape.value(v)
}

// Add returns v + o and records the operation.
func (v Var) Add(o Var) Var {
	t := v.tape
	out := t.node(t.value(v) + t.value(o))
	t.Record(ops.NewAddOp(v.id, o.id, out.id))
	return out
}

// Sub returns v - o and records the operation.
func (v Var) Sub(o Var) Var {
	t := v.tape
	out := t.node(t.value(v) - t.value(o))
	t.Record(ops.NewSubOp(v.id, o.id, out.id))
	return out
}

// Mul returns v * o and records the operation.
func (v Var) Mul(o Var) Var {
	t := v.tape
	a, b := t.value(v), t.value(o)
	out := t.node(a * b)
	t.Record(ops.NewMulOp(v.id, o.id, out.id, a, b))
	return out
}

// Div returns v / o and records the operation.
func (v Var) Div(o Var) Var {
	t := v.tape
	b := t.value(o)
	q := t.value(v) / b
	out := t.node(q)
	t.Record(ops.NewDivOp(v.id, o.id, out.id, b, q))
	return out
}

// Neg returns -v and records the operation.
func (v Var) Neg() Var {
	t := v.tape
	out := t.node(-t.value(v))
	t.Record(ops.NewNegOp(v.id, out.id))
	return out
}

// Positive reports whether the forward value of v is > 0.
func (v Var) Positive() bool {
	return v.Value() > 0
}

// Lift creates a constant node on v's tape.
func (v Var) Lift(c float64) Var {
	return v.tape.node(c)
}

// Exp is the exponential primitive for tape variables.
func Exp(v Var) Var {
	t := v.tape
	e := math.Exp(t.value(v))
	out := t.node(e)
	t.Record(ops.NewExpOp(v.id, out.id, e))
	return out
}

// Sigmoid records σ(v) as a single fused operation.
//
// The forward value comes from logistic.Of and never overflows.
func Sigmoid(v Var) Var {
	t := v.tape
	x := t.value(v)
	out := t.node(logistic.Of(x))
	t.Record(ops.NewSigmoidOp(v.id, out.id, logistic.Derivative(x)))
	return out
}
