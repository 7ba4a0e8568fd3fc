// Package ops defines scalar operations recorded on a gradient tape.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the tape when the operation is created
//   - Backward pass: computes gradients for inputs given the output gradient
//
// Nodes are identified by their index on the tape.
//
// Supported operations:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - SubOp: a - b (d/da = 1, d/db = -1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - DivOp: a / b (d/da = 1/b, d/db = -a/b²)
//   - NegOp: -a
//   - ExpOp: exp(a) (d/da = exp(a))
//   - SigmoidOp: fused σ(a) (d/da = σ(a)(1 - σ(a)))
package ops

// Operation represents a differentiable operation in the computation graph.
// Each operation records its input and output node ids during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per entry of Inputs(), in the same order.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad float64) []float64

	// Inputs returns the input node ids for this operation.
	Inputs() []int

	// Output returns the node id produced by this operation.
	Output() int
}
