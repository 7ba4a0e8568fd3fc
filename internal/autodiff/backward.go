package autodiff

// Gradients holds dOut/dNode for every node on a tape after a backward pass.
type Gradients struct {
	tape       *GradientTape
	generation int
	grads      []float64
}

// Of returns the gradient of the backward output with respect to v.
// Nodes the output does not depend on have gradient 0.
func (g Gradients) Of(v Var) float64 {
	if v.tape != g.tape || v.gen != g.generation {
		panic("autodiff: variable does not belong to this backward pass")
	}
	if v.id >= len(g.grads) {
		return 0
	}
	return g.grads[v.id]
}

// Backward computes gradients of out with respect to every node by walking
// the tape in reverse.
//
// Algorithm:
//  1. Seed the output gradient with 1
//  2. Walk operations in reverse order
//  3. For each operation whose output received a gradient, compute input
//     gradients using the chain rule
//  4. Accumulate gradients when a node is used more than once
func (t *GradientTape) Backward(out Var) Gradients {
	t.check(out)
	if len(t.operations) == 0 {
		panic("backward: no operations recorded (did you forget to call StartRecording()?)")
	}

	// Stop recording during backward pass to prevent recording gradient operations
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	grads := make([]float64, len(t.values))
	reached := make([]bool, len(t.values))
	grads[out.id] = 1
	reached[out.id] = true

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		if !reached[op.Output()] {
			continue
		}
		inputGrads := op.Backward(grads[op.Output()])
		for j, input := range op.Inputs() {
			if j >= len(inputGrads) {
				break
			}
			grads[input] += inputGrads[j]
			reached[input] = true
		}
	}

	return Gradients{tape: t, generation: t.generation, grads: grads}
}
