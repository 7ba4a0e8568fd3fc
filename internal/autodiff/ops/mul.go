package ops

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - grad_a = outputGrad * b
//   - grad_b = outputGrad * a
type MulOp struct {
	inputs []int
	output int
	a, b   float64 // Forward values of the inputs.
}

// NewMulOp creates a new MulOp. a and b are the forward values of the inputs.
func NewMulOp(aID, bID, output int, a, b float64) *MulOp {
	return &MulOp{
		inputs: []int{aID, bID},
		output: output,
		a:      a,
		b:      b,
	}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.b, outputGrad * op.a}
}

// Inputs returns the input node ids [a, b].
func (op *MulOp) Inputs() []int {
	return op.inputs
}

// Output returns the node id of a * b.
func (op *MulOp) Output() int {
	return op.output
}
