package dual

import "math"

// HyperDual is x + D1·ε1 + D2·ε2 + D12·ε1ε2.
//
// Seeding D1 = D2 = 1 makes D1 and D2 the first derivative and D12 the second
// derivative of any composition of the supported operations.
type HyperDual struct {
	Val float64
	D1  float64
	D2  float64
	D12 float64
}

// HyperVariable returns a HyperDual seeded for first and second derivatives.
func HyperVariable(x float64) HyperDual {
	return HyperDual{Val: x, D1: 1, D2: 1}
}

// HyperConstant returns a HyperDual with all infinitesimal parts zero.
func HyperConstant(c float64) HyperDual {
	return HyperDual{Val: c}
}

// Add returns h + o.
func (h HyperDual) Add(o HyperDual) HyperDual {
	return HyperDual{
		Val: h.Val + o.Val,
		D1:  h.D1 + o.D1,
		D2:  h.D2 + o.D2,
		D12: h.D12 + o.D12,
	}
}

// Sub returns h - o.
func (h HyperDual) Sub(o HyperDual) HyperDual {
	return h.Add(o.Neg())
}

// Mul returns h * o.
func (h HyperDual) Mul(o HyperDual) HyperDual {
	return HyperDual{
		Val: h.Val * o.Val,
		D1:  h.Val*o.D1 + h.D1*o.Val,
		D2:  h.Val*o.D2 + h.D2*o.Val,
		D12: h.Val*o.D12 + h.D1*o.D2 + h.D2*o.D1 + h.D12*o.Val,
	}
}

// Div returns h / o, computed as h · (1/o).
func (h HyperDual) Div(o HyperDual) HyperDual {
	return h.Mul(o.inv())
}

// inv returns 1/o using f(x) = 1/x, f' = -1/x², f'' = 2/x³.
func (h HyperDual) inv() HyperDual {
	r := 1 / h.Val
	return h.apply(r, -r*r, 2*r*r*r)
}

// apply lifts a scalar function with value f0, first derivative f1 and second
// derivative f2 (all at h.Val) onto h.
func (h HyperDual) apply(f0, f1, f2 float64) HyperDual {
	return HyperDual{
		Val: f0,
		D1:  f1 * h.D1,
		D2:  f1 * h.D2,
		D12: f1*h.D12 + f2*h.D1*h.D2,
	}
}

// Neg returns -h.
func (h HyperDual) Neg() HyperDual {
	return HyperDual{Val: -h.Val, D1: -h.D1, D2: -h.D2, D12: -h.D12}
}

// Positive reports whether the primal value is > 0.
func (h HyperDual) Positive() bool {
	return h.Val > 0
}

// Lift returns c as a constant HyperDual.
func (h HyperDual) Lift(c float64) HyperDual {
	return HyperConstant(c)
}

// IsNaN reports whether the primal value is NaN.
func (h HyperDual) IsNaN() bool {
	return math.IsNaN(h.Val)
}

// First returns the first derivative carried along ε1.
func (h HyperDual) First() float64 {
	return h.D1
}

// Second returns the mixed ε1ε2 part, the second derivative for a seeded input.
func (h HyperDual) Second() float64 {
	return h.D12
}

// HyperExp is the exponential primitive for HyperDual.
func HyperExp(h HyperDual) HyperDual {
	e := math.Exp(h.Val)
	if h.D1 == 0 && h.D2 == 0 && h.D12 == 0 {
		return HyperDual{Val: e}
	}
	return h.apply(e, e, e)
}
