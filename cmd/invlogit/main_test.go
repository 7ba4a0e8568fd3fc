package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/logistic/internal/autodiff"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func field(t *testing.T, line string, i int) float64 {
	t.Helper()
	fields := strings.Fields(line)
	require.Greater(t, len(fields), i)
	v, err := strconv.ParseFloat(fields[i], 64)
	require.NoError(t, err)
	return v
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "0", "2", "-2", "1e10", "-1e10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "sigmoid")
	assert.Equal(t, []string{"0", "0.5", "0.25"}, strings.Fields(lines[1]))
	assert.InDelta(t, 0.8807970779778823, field(t, lines[2], 1), 1e-15)
	assert.InDelta(t, 0.11920292202211755, field(t, lines[3], 1), 1e-15)
	assert.Equal(t, []string{"1e+10", "1", "0"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"-1e+10", "0", "0"}, strings.Fields(lines[5]))
}

func TestEval_DerivativeDoesNotUnderflowEarly(t *testing.T) {
	out, err := run(t, "eval", "40", "-40")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Positive(t, field(t, lines[1], 2))
	assert.Equal(t, field(t, lines[2], 2), field(t, lines[1], 2))
}

func TestHelp(t *testing.T) {
	for _, args := range [][]string{
		{"eval", "--help"},
		{"eval", "1", "-h"},
		{"grad", "-h"},
		{"grad", "--help"},
	} {
		out, err := run(t, args...)
		require.NoError(t, err, "%v", args)
		assert.Contains(t, out, "Usage:", "%v", args)
		assert.Contains(t, out, args[0]+" X...", "%v", args)
	}
}

func TestEval_BadInput(t *testing.T) {
	_, err := run(t, "eval", "1", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse "abc"`)
}

func TestEval_NoArgs(t *testing.T) {
	_, err := run(t, "eval")
	require.Error(t, err)
}

func TestGrad(t *testing.T) {
	out, err := run(t, "grad", "0", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"0", "0.25", "0.25", "0"}, strings.Fields(lines[1]))

	assert.InDelta(t, field(t, lines[2], 1), field(t, lines[2], 2), 1e-15, "forward and reverse mode agree")
}

func TestComputeGradients(t *testing.T) {
	tape := autodiff.NewGradientTape()
	tape.StartRecording()

	g := computeGradients(tape, 1)
	assert.InDelta(t, g.forward, g.reverse, 1e-15)
	assert.Less(t, g.second, 0.0, "sigmoid is concave for x > 0")
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "-n", "1000", "--workers", "2", "--min-chunk", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "inputs:     1000")
	assert.Contains(t, out, "workers=2, min-chunk=100")

	_, err = run(t, "bench", "-n", "1")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH:")
	assert.Contains(t, out, "parallel: enabled=")
}

func TestCPUFeatures(t *testing.T) {
	assert.NotEmpty(t, cpuFeatures("amd64"))
	assert.NotEmpty(t, cpuFeatures("arm64"))
	assert.Empty(t, cpuFeatures("wasm"))

	var buf bytes.Buffer
	printFeatures(&buf, "wasm")
	assert.Equal(t, "cpu features: none reported for wasm\n", buf.String())
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "invlogit "+version+"\n", out)
}
