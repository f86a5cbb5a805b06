package numfn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEye(t *testing.T) {
	out := mustCall(t, "eye", []any{3}, nil)
	want := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))

	out = mustCall(t, "eye", []any{2}, map[string]any{"M": 3, "k": 1})
	want = mat.NewDense(2, 3, []float64{0, 1, 0, 0, 0, 1})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestOnesAndZeros(t *testing.T) {
	out := mustCall(t, "ones", []any{[]int{2, 2}}, nil)
	want := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))

	out = mustCall(t, "zeros", []any{[]int{3}}, nil)
	z := out.(*mat.Dense)
	r, c := z.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.True(t, mat.EqualApprox(mat.NewDense(1, 3, nil), z, 1e-12))
}

func TestZerosRejectsBadShape(t *testing.T) {
	_, err := call(t, "zeros", []any{[]int{1, 2, 3}}, nil)
	require.Error(t, err)

	_, err = call(t, "zeros", []any{[]int{0}}, nil)
	require.Error(t, err)
}

func TestDot(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})
	out := mustCall(t, "dot", []any{a, b}, nil)
	want := mat.NewDense(2, 2, []float64{19, 22, 43, 50})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestDotMisaligned(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(2, 3, nil)
	_, err := call(t, "dot", []any{a, b}, nil)
	require.Error(t, err)
}

func TestTraceWithOffset(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	assert.InDelta(t, 5, mustCall(t, "trace", []any{m}, nil).(float64), 1e-12)
	assert.InDelta(t, 2, mustCall(t, "trace", []any{m}, map[string]any{"offset": 1}).(float64), 1e-12)
}

func TestTranspose(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	out := mustCall(t, "transpose", []any{m}, nil)
	want := mat.NewDense(2, 2, []float64{1, 3, 2, 4})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestSavetxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	out := mustCall(t, "savetxt", []any{path, m}, map[string]any{
		"fmt":       "%g",
		"delimiter": ",",
		"header":    "top",
	})
	assert.Nil(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# top\n1,2\n3,4\n", string(data))
}
