package ops

// DivOp represents division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b² = -(a/b)/b, so grad_b = -outputGrad * output / b
type DivOp struct {
	inputs   []int
	output   int
	divisor  float64 // b
	quotient float64 // a / b
}

// NewDivOp creates a new DivOp from the divisor and the computed quotient.
func NewDivOp(a, b, output int, divisor, quotient float64) *DivOp {
	return &DivOp{
		inputs:   []int{a, b},
		output:   output,
		divisor:  divisor,
		quotient: quotient,
	}
}

// Backward computes input gradients for division.
//
// Reusing the quotient avoids forming b², which overflows long before a/b does.
func (op *DivOp) Backward(outputGrad float64) []float64 {
	gradA := outputGrad / op.divisor
	gradB := -gradA * op.quotient
	return []float64{gradA, gradB}
}

// Inputs returns the input node ids [a, b].
func (op *DivOp) Inputs() []int {
	return op.inputs
}

// Output returns the node id of a / b.
func (op *DivOp) Output() int {
	return op.output
}
