// Package matrix parses delimited numeric matrix literals into gonum
// dense matrices. A literal is rows separated by semicolons or newlines,
// fields separated by commas or whitespace; square brackets are ignored
// so bracketed renderings round-trip.
package matrix

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/numstack/numctl/pkg/errdefs"
	"gonum.org/v1/gonum/mat"
)

// Parse converts a matrix literal into a dense matrix. A trailing row
// separator is trimmed. All rows must have the same number of fields.
func Parse(s string) (*mat.Dense, error) {
	clean := strings.Map(func(r rune) rune {
		if r == '[' || r == ']' {
			return ' '
		}
		return r
	}, s)

	var rows [][]float64
	cols := 0
	for _, line := range strings.FieldsFunc(clean, func(r rune) bool {
		return r == ';' || r == '\n'
	}) {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &errdefs.CoercionError{Token: f, Want: "number", Err: err}
			}
			row[i] = v
		}
		if cols == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, &errdefs.CoercionError{Token: s, Want: "matrix",
				Err: errRagged(cols, len(row))}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &errdefs.CoercionError{Token: s, Want: "matrix", Err: errEmpty}
	}

	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// ParseOrFetch parses the token as a matrix literal, or, for a URL
// token, fetches the content and parses that. This lets any
// matrix-valued argument be supplied inline or indirectly without a
// separate flag.
func ParseOrFetch(token string) (*mat.Dense, error) {
	if !IsURL(token) {
		return Parse(token)
	}
	body, err := Fetch(token)
	if err != nil {
		return nil, &errdefs.CoercionError{Token: token, Want: "matrix", Err: err}
	}
	return Parse(body)
}

// Flatten returns the matrix contents as a row-major vector.
func Flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
