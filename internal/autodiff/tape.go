package autodiff

import (
	"fmt"

	"github.com/born-ml/logistic/internal/autodiff/ops"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewGradientTape()
//	tape.StartRecording()
//	x := tape.Variable(2)
//	y := x.Mul(x)
//	grads := tape.Backward(y)
//	grads.Of(x) // 4
//
// A tape is not safe for concurrent use.
type GradientTape struct {
	values     []float64       // Forward value of every node, indexed by node id
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
	generation int             // Incremented by Clear to invalidate old Vars
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		values:     make([]float64, 0, 16),
		operations: make([]ops.Operation, 0, 16),
	}
}

// StartRecording enables operation recording.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all nodes and recorded operations.
// Recording state is preserved. Vars created before Clear become invalid.
func (t *GradientTape) Clear() {
	t.values = t.values[:0]
	t.operations = t.operations[:0]
	t.generation++
}

// NumOps returns the number of recorded operations.
func (t *GradientTape) NumOps() int {
	return len(t.operations)
}

// NumNodes returns the number of nodes (variables, constants and results).
func (t *GradientTape) NumNodes() int {
	return len(t.values)
}

// Variable creates an input node holding v.
func (t *GradientTape) Variable(v float64) Var {
	return t.node(v)
}

// node appends a value and returns a Var referring to it.
func (t *GradientTape) node(v float64) Var {
	t.values = append(t.values, v)
	return Var{tape: t, id: len(t.values) - 1, gen: t.generation}
}

// value returns the forward value of v, panicking if v does not belong here.
func (t *GradientTape) value(v Var) float64 {
	t.check(v)
	return t.values[v.id]
}

func (t *GradientTape) check(v Var) {
	if v.tape != t {
		panic("autodiff: variable belongs to a different tape")
	}
	if v.gen != t.generation || v.id >= len(t.values) {
		panic(fmt.Sprintf("autodiff: stale variable %d (tape cleared)", v.id))
	}
}
