package numfn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAddBroadcastsScalar(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := mustCall(t, "add", []any{m, 10.0}, nil)
	want := mat.NewDense(2, 2, []float64{11, 12, 13, 14})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestAddBroadcastsRowAgainstColumn(t *testing.T) {
	row := mat.NewDense(1, 3, []float64{1, 2, 3})
	col := mat.NewDense(3, 1, []float64{10, 20, 30})
	out := mustCall(t, "add", []any{row, col}, nil)
	want := mat.NewDense(3, 3, []float64{11, 12, 13, 21, 22, 23, 31, 32, 33})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestAddIncompatibleShapes(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(2, 2, nil)
	_, err := call(t, "add", []any{a, b}, nil)
	require.Error(t, err)
}

func TestModFollowsDivisorSign(t *testing.T) {
	out := mustCall(t, "mod", []any{-7.0, 3.0}, nil)
	assert.InDelta(t, 2, out.(*mat.Dense).At(0, 0), 1e-12)

	out = mustCall(t, "mod", []any{7.0, -3.0}, nil)
	assert.InDelta(t, -2, out.(*mat.Dense).At(0, 0), 1e-12)
}

func TestFmodFollowsDividendSign(t *testing.T) {
	out := mustCall(t, "fmod", []any{-7.0, 3.0}, nil)
	assert.InDelta(t, -1, out.(*mat.Dense).At(0, 0), 1e-12)
}

func TestDivmodReturnsQuotientAndRemainder(t *testing.T) {
	out := mustCall(t, "divmod", []any{7.0, 3.0}, nil)
	tup, ok := out.([]any)
	require.True(t, ok)
	require.Len(t, tup, 2)
	assert.InDelta(t, 2, tup[0].(*mat.Dense).At(0, 0), 1e-12)
	assert.InDelta(t, 1, tup[1].(*mat.Dense).At(0, 0), 1e-12)
}

func TestModfSplitsFractionalFirst(t *testing.T) {
	out := mustCall(t, "modf", []any{2.75}, nil)
	tup, ok := out.([]any)
	require.True(t, ok)
	require.Len(t, tup, 2)
	assert.InDelta(t, 0.75, tup[0].(*mat.Dense).At(0, 0), 1e-12)
	assert.InDelta(t, 2, tup[1].(*mat.Dense).At(0, 0), 1e-12)
}

func TestPower(t *testing.T) {
	m := mat.NewDense(1, 3, []float64{1, 2, 3})
	out := mustCall(t, "power", []any{m, 2.0}, nil)
	want := mat.NewDense(1, 3, []float64{1, 4, 9})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}
