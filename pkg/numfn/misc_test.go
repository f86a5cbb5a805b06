package numfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestClip(t *testing.T) {
	m := mat.NewDense(1, 5, []float64{-2, -1, 0, 1, 2})
	out := mustCall(t, "clip", []any{m}, map[string]any{"a_min": -1.0, "a_max": 1.0})
	want := mat.NewDense(1, 5, []float64{-1, -1, 0, 1, 1})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestClipRequiresBound(t *testing.T) {
	m := mat.NewDense(1, 1, []float64{0})
	_, err := call(t, "clip", []any{m}, nil)
	require.Error(t, err)
}

func TestConvolveModes(t *testing.T) {
	a := []float64{1, 2, 3}
	v := []float64{0, 1, 0.5}

	out := mustCall(t, "convolve", []any{a, v}, nil)
	assert.InDeltaSlice(t, []float64{0, 1, 2.5, 4, 1.5}, out.([]float64), 1e-12)

	out = mustCall(t, "convolve", []any{a, v}, map[string]any{"mode": "same"})
	assert.InDeltaSlice(t, []float64{1, 2.5, 4}, out.([]float64), 1e-12)

	out = mustCall(t, "convolve", []any{a, v}, map[string]any{"mode": "valid"})
	assert.InDeltaSlice(t, []float64{2.5}, out.([]float64), 1e-12)
}

func TestInterp(t *testing.T) {
	x := []float64{0.5, 1.5, 3.0}
	xp := []float64{0, 1, 2}
	fp := []float64{0, 10, 20}
	out := mustCall(t, "interp", []any{x, xp, fp}, nil)
	assert.InDeltaSlice(t, []float64{5, 15, 20}, out.([]float64), 1e-12)
}

func TestInterpLeftRight(t *testing.T) {
	x := []float64{-1, 5}
	xp := []float64{0, 1}
	fp := []float64{10, 20}
	out := mustCall(t, "interp", []any{x, xp, fp}, map[string]any{"left": -99.0, "right": 99.0})
	assert.InDeltaSlice(t, []float64{-99, 99}, out.([]float64), 1e-12)
}

func TestSign(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{-5, 0, 7})
	out := mustCall(t, "sign", []any{m}, nil)
	want := mat.NewDense(1, 3, []float64{-1, 0, 1})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestSinc(t *testing.T) {
	out := mustCall(t, "sinc", []any{0.0}, nil)
	assert.InDelta(t, 1, out.(*mat.Dense).At(0, 0), 1e-12)

	out = mustCall(t, "sinc", []any{0.5}, nil)
	assert.InDelta(t, 2/math.Pi, out.(*mat.Dense).At(0, 0), 1e-12)
}

func TestMaximumPropagatesNaN(t *testing.T) {
	out := mustCall(t, "maximum", []any{math.NaN(), 1.0}, nil)
	assert.True(t, math.IsNaN(out.(*mat.Dense).At(0, 0)))

	out = mustCall(t, "fmax", []any{math.NaN(), 1.0}, nil)
	assert.InDelta(t, 1, out.(*mat.Dense).At(0, 0), 1e-12)
}

func TestFmaxFminIgnoreNaN(t *testing.T) {
	out := mustCall(t, "fmax", []any{2.0, math.NaN()}, nil)
	assert.InDelta(t, 2, out.(*mat.Dense).At(0, 0), 1e-12)

	out = mustCall(t, "fmin", []any{math.NaN(), -3.0}, nil)
	assert.InDelta(t, -3, out.(*mat.Dense).At(0, 0), 1e-12)

	out = mustCall(t, "fmin", []any{math.NaN(), math.NaN()}, nil)
	assert.True(t, math.IsNaN(out.(*mat.Dense).At(0, 0)))
}

func TestAround(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{1.234, 2.345, 2.5})
	out := mustCall(t, "around", []any{m}, map[string]any{"decimals": 1})
	want := mat.NewDense(1, 3, []float64{1.2, 2.3, 2.5})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-9))

	out = mustCall(t, "around", []any{m}, nil)
	want = mat.NewDense(1, 3, []float64{1, 2, 2})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestLogaddexp(t *testing.T) {
	out := mustCall(t, "logaddexp", []any{math.Log(2.0), math.Log(3.0)}, nil)
	assert.InDelta(t, math.Log(5), out.(*mat.Dense).At(0, 0), 1e-12)
}

func TestGcdLcm(t *testing.T) {
	out := mustCall(t, "gcd", []any{12.0, 18.0}, nil)
	assert.InDelta(t, 6, out.(*mat.Dense).At(0, 0), 1e-12)

	out = mustCall(t, "lcm", []any{4.0, 6.0}, nil)
	assert.InDelta(t, 12, out.(*mat.Dense).At(0, 0), 1e-12)
}
