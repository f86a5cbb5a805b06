package numfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSumReductions(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	out := mustCall(t, "sum", []any{m}, nil)
	assert.InDelta(t, 21, out.(float64), 1e-12)

	out = mustCall(t, "sum", []any{m}, map[string]any{"axis": []int{0}})
	assert.Equal(t, []float64{5, 7, 9}, out)

	out = mustCall(t, "sum", []any{m}, map[string]any{"axis": []int{1}})
	assert.Equal(t, []float64{6, 15}, out)
}

func TestSumKeepdims(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	out := mustCall(t, "sum", []any{m}, map[string]any{"axis": []int{1}, "keepdims": true})
	res, ok := out.(*mat.Dense)
	require.True(t, ok)
	r, c := res.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
	assert.InDelta(t, 6, res.At(0, 0), 1e-12)
}

func TestSumBothAxesIsFullReduction(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := mustCall(t, "sum", []any{m}, map[string]any{"axis": []int{0, 1}})
	assert.InDelta(t, 10, out.(float64), 1e-12)
}

func TestSumInitial(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{1, 2, 3})
	out := mustCall(t, "sum", []any{m}, map[string]any{"initial": 100.0})
	assert.InDelta(t, 106, out.(float64), 1e-12)
}

func TestSumAxisOutOfBounds(t *testing.T) {
	m := mat.NewDense(2, 2, nil)
	_, err := call(t, "sum", []any{m}, map[string]any{"axis": []int{2}})
	require.Error(t, err)
}

func TestCumsumFlattensWithoutAxis(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := mustCall(t, "cumsum", []any{m}, nil)
	assert.Equal(t, []float64{1, 3, 6, 10}, out)
}

func TestCumsumAlongRows(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := mustCall(t, "cumsum", []any{m}, map[string]any{"axis": []int{1}})
	want := mat.NewDense(2, 2, []float64{1, 3, 3, 7})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestCumprod(t *testing.T) {
	m := mat.NewDense(1, 4, []float64{1, 2, 3, 4})
	out := mustCall(t, "cumprod", []any{m}, nil)
	assert.Equal(t, []float64{1, 2, 6, 24}, out)
}

func TestDiff(t *testing.T) {
	m := mat.NewDense(1, 4, []float64{1, 2, 4, 7})
	out := mustCall(t, "diff", []any{m}, nil)
	want := mat.NewDense(1, 3, []float64{1, 2, 3})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))

	out = mustCall(t, "diff", []any{m}, map[string]any{"n": 2})
	want = mat.NewDense(1, 2, []float64{1, 1})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestGradient(t *testing.T) {
	m := mat.NewDense(1, 4, []float64{1, 2, 4, 7})
	out := mustCall(t, "gradient", []any{m}, nil)
	want := mat.NewDense(1, 4, []float64{1, 1.5, 2.5, 3})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestTrapz(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{1, 2, 3})
	out := mustCall(t, "trapz", []any{m}, nil)
	assert.InDelta(t, 4, out.(float64), 1e-12)

	out = mustCall(t, "trapz", []any{m}, map[string]any{"dx": 2.0})
	assert.InDelta(t, 8, out.(float64), 1e-12)
}

func TestCross(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{1, 0, 0})
	b := mat.NewDense(1, 3, []float64{0, 1, 0})
	out := mustCall(t, "cross", []any{a, b}, nil)
	assert.Equal(t, []float64{0, 0, 1}, out)
}
