package coerce

import (
	"math"
	"testing"

	"github.com/numstack/numctl/pkg/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestScalars(t *testing.T) {
	tests := []struct {
		name    string
		coercer Coercer
		token   string
		want    any
		wantErr bool
	}{
		{name: "int", coercer: Int, token: "42", want: 42},
		{name: "int negative", coercer: Int, token: "-7", want: -7},
		{name: "int bad", coercer: Int, token: "4.5", wantErr: true},
		{name: "float", coercer: Float, token: "2.5", want: 2.5},
		{name: "float scientific", coercer: Float, token: "1e-3", want: 0.001},
		{name: "float bad", coercer: Float, token: "abc", wantErr: true},
		{name: "bool true", coercer: Bool, token: "true", want: true},
		{name: "bool zero", coercer: Bool, token: "0", want: false},
		{name: "bool bad", coercer: Bool, token: "maybe", wantErr: true},
		{name: "string", coercer: String, token: "same", want: "same"},
		{name: "intlist", coercer: IntList, token: "2,3,4", want: []int{2, 3, 4}},
		{name: "intlist bad piece", coercer: IntList, token: "2,x", wantErr: true},
		{name: "boollist", coercer: BoolList, token: "1,0,true", want: []bool{true, false, true}},
		{name: "tuplelist", coercer: TupleList, token: "1,2", want: [][]int{{1}, {2}}},
		{name: "arrayorint int", coercer: ArrayOrInt, token: "5", want: 5},
		{name: "arrayorint array", coercer: ArrayOrInt, token: "0.25,0.75", want: []float64{0.25, 0.75}},
		{name: "order int", coercer: Order, token: "2", want: 2},
		{name: "order inf", coercer: Order, token: "inf", want: math.Inf(1)},
		{name: "order neg inf", coercer: Order, token: "-inf", want: math.Inf(-1)},
		{name: "order named", coercer: Order, token: "fro", want: "fro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.coercer.Fn(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				var cerr *errdefs.CoercionError
				assert.ErrorAs(t, err, &cerr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatrixCoercer(t *testing.T) {
	got, err := Matrix.Fn("1,2;3,4;")
	require.NoError(t, err)
	m, ok := got.(*mat.Dense)
	require.True(t, ok)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestArrayCoercer(t *testing.T) {
	got, err := Array.Fn("1,2;3,4")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)
}

func TestIntArgsVariadic(t *testing.T) {
	got, err := IntArgs.Fn([]string{"2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	_, err = IntArgs.Fn([]string{"2", "x"})
	assert.Error(t, err)
}
