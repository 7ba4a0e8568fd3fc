package ops

// SubOp represents subtraction: output = a - b.
type SubOp struct {
	inputs []int
	output int
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output int) *SubOp {
	return &SubOp{
		inputs: []int{a, b},
		output: output,
	}
}

// Backward computes input gradients: grad_a = outputGrad, grad_b = -outputGrad.
func (op *SubOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}

// Inputs returns the input node ids [a, b].
func (op *SubOp) Inputs() []int {
	return op.inputs
}

// Output returns the node id of a - b.
func (op *SubOp) Output() int {
	return op.output
}
