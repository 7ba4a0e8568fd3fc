package logistic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logistic/autodiff"
	"github.com/born-ml/logistic/dual"
	"github.com/born-ml/logistic/logistic"
)

func TestPublicAPI_DerivativePathsAgree(t *testing.T) {
	tape := autodiff.NewGradientTape()
	tape.StartRecording()

	for _, x := range []float64{-12, -2, -0.5, 0, 0.5, 2, 12} {
		tape.Clear()

		plain := logistic.Sigmoid(logistic.Real(x), logistic.Exp, nil)
		forward := logistic.Sigmoid(dual.Variable(x), dual.Exp, nil)
		hyper := logistic.Sigmoid(dual.HyperVariable(x), dual.HyperExp, nil)

		v := tape.Variable(x)
		composed := logistic.Sigmoid(v, autodiff.Exp, nil)
		reverse := tape.Backward(composed).Of(v)

		want := logistic.Derivative(x)
		assert.Equal(t, logistic.Of(x), float64(plain), "x=%g", x)
		assert.InDelta(t, want, forward.Der, 1e-12, "x=%g", x)
		assert.InDelta(t, want, hyper.First(), 1e-12, "x=%g", x)
		assert.InDelta(t, want, reverse, 1e-12, "x=%g", x)
		assert.InDelta(t, logistic.SecondDerivative(x), hyper.Second(), 1e-12, "x=%g", x)
	}
}

func TestPublicAPI_Apply(t *testing.T) {
	src := []float64{-1e10, -710, 0, 710, 1e10}
	dst := make([]float64, len(src))

	require.NoError(t, logistic.Apply(dst, src, logistic.DefaultConfig()))
	for _, y := range dst {
		assert.False(t, math.IsNaN(y) || math.IsInf(y, 0))
	}
	assert.Equal(t, 0.5, dst[2])

	err := logistic.Apply(dst[:1], src, logistic.DefaultConfig())
	assert.ErrorIs(t, err, logistic.ErrLengthMismatch)
}

func TestPublicAPI_FusedTapeSigmoid(t *testing.T) {
	tape := autodiff.NewGradientTape()
	tape.StartRecording()

	x := tape.Variable(0)
	y := autodiff.Sigmoid(x)
	assert.Equal(t, 0.25, tape.Backward(y).Of(x))
}
