package ops

// SigmoidOp represents a fused sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
//
// The composed form (Neg, Exp, Add, Div) records four operations; the fused op
// records one and differentiates with the local derivative cached during the
// forward pass.
//
// The derivative is cached rather than rebuilt as σ(x)(1 - σ(x)) from the
// output: 1 - σ(x) rounds to zero for x above ~37 while σ'(x) does not.
type SigmoidOp struct {
	input      int
	output     int
	derivative float64 // σ'(x)
}

// NewSigmoidOp creates a new sigmoid operation. derivative is σ'(x).
func NewSigmoidOp(input, output int, derivative float64) *SigmoidOp {
	return &SigmoidOp{
		input:      input,
		output:     output,
		derivative: derivative,
	}
}

// Inputs returns the input node id.
func (op *SigmoidOp) Inputs() []int {
	return []int{op.input}
}

// Output returns the output node id.
func (op *SigmoidOp) Output() int {
	return op.output
}

// Backward computes the gradient for sigmoid.
//
// For σ(x) = 1 / (1 + exp(-x)):
// dσ/dx = σ(x) * (1 - σ(x))
//
// grad_input = grad_output * σ'(x).
func (op *SigmoidOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.derivative}
}
