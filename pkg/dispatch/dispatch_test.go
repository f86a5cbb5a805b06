package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/numstack/numctl/pkg/config"
	"github.com/numstack/numctl/pkg/errdefs"
)

func newTestDispatcher() *Dispatcher {
	return &Dispatcher{
		Config:      config.Default(),
		Interactive: func() bool { return true },
	}
}

func pipedDispatcher(input string) *Dispatcher {
	return &Dispatcher{
		Config:      config.Default(),
		Stdin:       strings.NewReader(input),
		Interactive: func() bool { return false },
	}
}

func TestDispatchBinaryCommand(t *testing.T) {
	d := newTestDispatcher()
	out, err := d.Dispatch("add", []string{"1,2;3,4", "10"})
	require.NoError(t, err)
	want := mat.NewDense(2, 2, []float64{11, 12, 13, 14})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestDispatchKeywordArgument(t *testing.T) {
	d := newTestDispatcher()
	out, err := d.Dispatch("sum", []string{"1,2;3,4", "axis=0"})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, out)
}

func TestDispatchUnknownCommand(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("frobnicate", []string{"1"})
	var nf *errdefs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, errdefs.ExitNotFound, errdefs.ExitCode(err))
}

func TestDispatchUnknownKeyword(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("add", []string{"1", "2", "bogus=3"})
	var ae *errdefs.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "bogus")
}

func TestDispatchTooManyPositionals(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("sqrt", []string{"1", "2"})
	var ae *errdefs.ArgumentError
	require.ErrorAs(t, err, &ae)
}

func TestDispatchMissingPositionalInteractive(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("add", []string{"1"})
	var ae *errdefs.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Error(), "missing positional argument")
}

func TestDispatchStdinFallback(t *testing.T) {
	d := pipedDispatcher("1,2\n3,4\n")
	out, err := d.Dispatch("transpose", nil)
	require.NoError(t, err)
	want := mat.NewDense(2, 2, []float64{1, 3, 2, 4})
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestDispatchStdinJoinsLinesAsRows(t *testing.T) {
	d := pipedDispatcher("1,2\n3,4\n")
	out, err := d.Dispatch("add", []string{"10,10;10,10"})
	require.NoError(t, err)
	want := mat.NewDense(2, 2, []float64{11, 12, 13, 14})

	// Piped token fills the still-missing second positional.
	assert.True(t, mat.EqualApprox(want, out.(*mat.Dense), 1e-12))
}

func TestDispatchEmptyStdinStillMissing(t *testing.T) {
	d := pipedDispatcher("")
	_, err := d.Dispatch("sqrt", nil)
	var ae *errdefs.ArgumentError
	require.ErrorAs(t, err, &ae)
}

func TestDispatchCoercionError(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("eye", []string{"notanumber"})
	var ce *errdefs.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errdefs.ExitInvalid, errdefs.ExitCode(err))
}

func TestDispatchKeywordCoercionError(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("sum", []string{"1,2", "axis=banana"})
	var ce *errdefs.CoercionError
	require.ErrorAs(t, err, &ce)
}

func TestDispatchCallFailureWrapped(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.Dispatch("linalg.det", []string{"1,2,3;4,5,6"})
	var ce *errdefs.CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "linalg.det", ce.Command)
	assert.Equal(t, errdefs.ExitFailed, errdefs.ExitCode(err))
}

func TestDispatchVariadicCommand(t *testing.T) {
	d := newTestDispatcher()
	out, err := d.Dispatch("random.rand", []string{"2", "3"})
	require.NoError(t, err)
	m, ok := out.(*mat.Dense)
	require.True(t, ok)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestDispatchDottedName(t *testing.T) {
	d := newTestDispatcher()
	out, err := d.Dispatch("matrix.mean", []string{"2,4"})
	require.NoError(t, err)
	assert.InDelta(t, 3, out.(float64), 1e-12)
}

func TestDispatchURLPositionalKeepsQueryString(t *testing.T) {
	d := newTestDispatcher()
	// The query string contains '=' but the token is not ident=value.
	_, err := d.Dispatch("sqrt", []string{"file:///nonexistent/m.txt?a=1"})
	require.Error(t, err)
	var ae *errdefs.ArgumentError
	assert.False(t, strings.Contains(err.Error(), "unknown keyword"), "url treated as keyword: %v", err)
	assert.NotErrorAs(t, err, &ae)
}
