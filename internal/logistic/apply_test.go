package logistic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logistic/internal/parallel"
)

func spread(n int, lo, hi float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

func TestApply(t *testing.T) {
	src := spread(10000, -50, 50)

	for name, cfg := range map[string]parallel.Config{
		"sequential": parallel.Sequential(),
		"parallel":   {Enabled: true, NumWorkers: 4, MinChunkSize: 64},
	} {
		t.Run(name, func(t *testing.T) {
			dst := make([]float64, len(src))
			require.NoError(t, Apply(dst, src, cfg))
			for i, x := range src {
				assert.Equal(t, Of(x), dst[i], "x=%g", x)
			}
		})
	}
}

func TestApply_InPlace(t *testing.T) {
	xs := []float32{-1000, -2, 0, 2, 1000}
	require.NoError(t, Apply(xs, xs, parallel.DefaultConfig()))

	assert.Equal(t, float32(0), xs[0])
	assert.InDelta(t, 0.11920292, xs[1], 1e-7)
	assert.Equal(t, float32(0.5), xs[2])
	assert.InDelta(t, 0.88079708, xs[3], 1e-7)
	assert.Equal(t, float32(1), xs[4])
}

func TestApply_LengthMismatch(t *testing.T) {
	err := Apply(make([]float64, 3), make([]float64, 4), parallel.DefaultConfig())
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "dst has 3 elements, src has 4")

	err = ApplyDerivative(make([]float64, 1), nil, parallel.DefaultConfig())
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestApply_Empty(t *testing.T) {
	require.NoError(t, Apply[float64](nil, nil, parallel.DefaultConfig()))
	require.NoError(t, ApplyDerivative[float64](nil, nil, parallel.DefaultConfig()))
}

func TestApplyDerivative(t *testing.T) {
	src := spread(5000, -20, 20)
	dst := make([]float64, len(src))
	cfg := parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 100}

	require.NoError(t, ApplyDerivative(dst, src, cfg))
	for i, x := range src {
		assert.Equal(t, Derivative(x), dst[i], "x=%g", x)
	}
}

func TestApplyDerivative_Symmetric(t *testing.T) {
	src := []float64{-45, -40, -37, 37, 40, 45}
	dst := make([]float64, len(src))
	require.NoError(t, ApplyDerivative(dst, src, parallel.Sequential()))

	for i := range len(src) / 2 {
		j := len(src) - 1 - i
		assert.Positive(t, dst[i], "x=%g", src[i])
		assert.Equal(t, dst[i], dst[j], "x=%g", src[j])
	}
}

func BenchmarkApply(b *testing.B) {
	src := spread(1<<16, -50, 50)
	dst := make([]float64, len(src))

	b.Run("parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			_ = Apply(dst, src, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfg := parallel.Sequential()
		for i := 0; i < b.N; i++ {
			_ = Apply(dst, src, cfg)
		}
	})
}
