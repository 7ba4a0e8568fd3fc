package ops

// NegOp represents negation: output = -a.
type NegOp struct {
	input  int
	output int
}

// NewNegOp creates a new NegOp.
func NewNegOp(input, output int) *NegOp {
	return &NegOp{input: input, output: output}
}

// Backward computes grad_input = -outputGrad.
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad}
}

// Inputs returns the input node id [a].
func (op *NegOp) Inputs() []int {
	return []int{op.input}
}

// Output returns the node id of -a.
func (op *NegOp) Output() int {
	return op.output
}
