package ops

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	input  int     // x
	output int     // exp(x)
	result float64 // Cached forward value exp(x).
}

// NewExpOp creates a new ExpOp.
func NewExpOp(input, output int, result float64) *ExpOp {
	return &ExpOp{
		input:  input,
		output: output,
		result: result,
	}
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.result}
}

// Inputs returns the input node id [x].
func (op *ExpOp) Inputs() []int {
	return []int{op.input}
}

// Output returns the node id of exp(x).
func (op *ExpOp) Output() int {
	return op.output
}
