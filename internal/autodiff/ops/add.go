package ops

// AddOp represents addition: output = a + b.
type AddOp struct {
	inputs []int // [a, b]
	output int   // a + b
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output int) *AddOp {
	return &AddOp{
		inputs: []int{a, b},
		output: output,
	}
}

// Backward passes the output gradient through unchanged to both inputs.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// Inputs returns the input node ids [a, b].
func (op *AddOp) Inputs() []int {
	return op.inputs
}

// Output returns the node id of a + b.
func (op *AddOp) Output() int {
	return op.output
}
