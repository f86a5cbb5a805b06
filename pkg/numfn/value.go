package numfn

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Argument accessors. The schema guarantees coerced types, so a mismatch
// here means schema and library diverged for the command.

func (c *CallContext) arg(i int) (any, error) {
	if i >= len(c.Args) {
		return nil, fmt.Errorf("missing argument %d", i+1)
	}
	return c.Args[i], nil
}

// Dense returns positional argument i as a dense matrix. Scalars and
// vectors are promoted to 1x1 and 1xN matrices.
func (c *CallContext) Dense(i int) (*mat.Dense, error) {
	v, err := c.arg(i)
	if err != nil {
		return nil, err
	}
	return toDense(v)
}

func toDense(v any) (*mat.Dense, error) {
	switch x := v.(type) {
	case *mat.Dense:
		return x, nil
	case []float64:
		return mat.NewDense(1, len(x), x), nil
	case float64:
		return mat.NewDense(1, 1, []float64{x}), nil
	case int:
		return mat.NewDense(1, 1, []float64{float64(x)}), nil
	default:
		return nil, fmt.Errorf("expected matrix, got %T", v)
	}
}

// Vector returns positional argument i flattened to a vector.
func (c *CallContext) Vector(i int) ([]float64, error) {
	v, err := c.arg(i)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case []float64:
		return x, nil
	case *mat.Dense:
		return flatten(x), nil
	case float64:
		return []float64{x}, nil
	case int:
		return []float64{float64(x)}, nil
	default:
		return nil, fmt.Errorf("expected array, got %T", v)
	}
}

// Int returns positional argument i as an integer.
func (c *CallContext) Int(i int) (int, error) {
	v, err := c.arg(i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("expected int, got %T", v)
	}
	return n, nil
}

// Str returns positional argument i as a string.
func (c *CallContext) Str(i int) (string, error) {
	v, err := c.arg(i)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

// Dims interprets a variadic integer batch as matrix dimensions.
func (c *CallContext) Dims() []int {
	if len(c.Args) == 0 {
		return nil
	}
	if dims, ok := c.Args[0].([]int); ok {
		return dims
	}
	return nil
}

// Keyword accessors. Absent keywords return the given default.

func (c *CallContext) kw(name string) (any, bool) {
	v, ok := c.Kwargs[name]
	return v, ok
}

// HasKw reports whether the keyword was supplied.
func (c *CallContext) HasKw(name string) bool {
	_, ok := c.Kwargs[name]
	return ok
}

// KwInt returns an integer keyword.
func (c *CallContext) KwInt(name string, def int) int {
	if v, ok := c.kw(name); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return def
}

// KwFloat returns a float keyword.
func (c *CallContext) KwFloat(name string, def float64) float64 {
	if v, ok := c.kw(name); ok {
		switch x := v.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		}
	}
	return def
}

// KwBool returns a boolean keyword.
func (c *CallContext) KwBool(name string, def bool) bool {
	if v, ok := c.kw(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// KwStr returns a string keyword.
func (c *CallContext) KwStr(name, def string) string {
	if v, ok := c.kw(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// KwIntList returns an integer-list keyword, or nil when absent.
func (c *CallContext) KwIntList(name string) []int {
	if v, ok := c.kw(name); ok {
		switch x := v.(type) {
		case []int:
			return x
		case int:
			return []int{x}
		}
	}
	return nil
}

// KwDense returns a matrix keyword.
func (c *CallContext) KwDense(name string) (*mat.Dense, bool) {
	if v, ok := c.kw(name); ok {
		if m, err := toDense(v); err == nil {
			return m, true
		}
	}
	return nil, false
}

// axis returns the reduction axis: -1 means reduce everything. The
// universal axis option is an integer list; a declared axis keyword is a
// plain integer. A two-axis list on a 2-D matrix is a full reduction.
func (c *CallContext) axis() (int, bool) {
	v, ok := c.kw("axis")
	if !ok {
		return -1, false
	}
	switch x := v.(type) {
	case int:
		return x, true
	case []int:
		if len(x) == 1 {
			return x[0], true
		}
		return -1, false
	}
	return -1, false
}

// warnIgnored warns about supplied options the implementation does not
// honor. Schemas stay faithful to the library surface, so commands accept
// the universal vocabulary even when an option cannot apply here.
func warnIgnored(c *CallContext, used ...string) {
	for name := range c.Kwargs {
		ignored := true
		for _, u := range used {
			if u == name {
				ignored = false
				break
			}
		}
		if ignored {
			slog.Warn("ignoring unsupported option", "option", name)
		}
	}
}

// flatten returns the matrix contents row-major.
func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

func denseFromSlice(rows, cols int, data []float64) *mat.Dense {
	return mat.NewDense(rows, cols, data)
}

// unaryApply returns a new matrix with f applied to every element.
func unaryApply(m *mat.Dense, f func(float64) float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)
	return &out
}

// unary builds an elementwise single-matrix callable.
func unary(f func(float64) float64) func(*CallContext) (any, error) {
	return func(c *CallContext) (any, error) {
		m, err := c.Dense(0)
		if err != nil {
			return nil, err
		}
		warnIgnored(c)
		return unaryApply(m, f), nil
	}
}

// binary builds an elementwise two-matrix callable with broadcasting.
func binary(f func(a, b float64) float64) func(*CallContext) (any, error) {
	return func(c *CallContext) (any, error) {
		a, err := c.Dense(0)
		if err != nil {
			return nil, err
		}
		b, err := c.Dense(1)
		if err != nil {
			return nil, err
		}
		warnIgnored(c)
		return broadcast(a, b, f)
	}
}

// broadcast applies f elementwise over a and b, expanding unit
// dimensions to match the other operand.
func broadcast(a, b *mat.Dense, f func(x, y float64) float64) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	rows, err := broadcastDim(ar, br)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := broadcastDim(ac, bc)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		ai, bi := i, i
		if ar == 1 {
			ai = 0
		}
		if br == 1 {
			bi = 0
		}
		for j := 0; j < cols; j++ {
			aj, bj := j, j
			if ac == 1 {
				aj = 0
			}
			if bc == 1 {
				bj = 0
			}
			out.Set(i, j, f(a.At(ai, aj), b.At(bi, bj)))
		}
	}
	return out, nil
}

func broadcastDim(a, b int) (int, error) {
	switch {
	case a == b:
		return a, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	default:
		return 0, fmt.Errorf("dimensions %d and %d are not broadcastable", a, b)
	}
}

// reduce applies red across the whole matrix, or along the requested
// axis (0 = per column, 1 = per row). With keepdims the result stays
// two-dimensional.
func reduce(c *CallContext, m *mat.Dense, red func([]float64) float64) (any, error) {
	axis, hasAxis := c.axis()
	keep := c.KwBool("keepdims", false)
	rows, cols := m.Dims()

	if !hasAxis || axis < 0 {
		v := red(flatten(m))
		if keep {
			return mat.NewDense(1, 1, []float64{v}), nil
		}
		return v, nil
	}

	switch axis {
	case 0:
		out := make([]float64, cols)
		col := make([]float64, rows)
		for j := 0; j < cols; j++ {
			mat.Col(col, j, m)
			out[j] = red(col)
		}
		if keep {
			return mat.NewDense(1, cols, out), nil
		}
		return out, nil
	case 1:
		out := make([]float64, rows)
		row := make([]float64, cols)
		for i := 0; i < rows; i++ {
			mat.Row(row, i, m)
			out[i] = red(row)
		}
		if keep {
			return mat.NewDense(rows, 1, out), nil
		}
		return out, nil
	default:
		return nil, fmt.Errorf("axis %d is out of bounds for a 2-dimensional matrix", axis)
	}
}

// scan applies an accumulating transform along the flattened matrix, or
// along the requested axis.
func scan(c *CallContext, m *mat.Dense, step func(acc, v float64) float64, init float64) (any, error) {
	axis, hasAxis := c.axis()
	rows, cols := m.Dims()

	if !hasAxis || axis < 0 {
		data := flatten(m)
		out := make([]float64, len(data))
		acc := init
		for i, v := range data {
			acc = step(acc, v)
			out[i] = acc
		}
		return out, nil
	}

	out := mat.NewDense(rows, cols, nil)
	switch axis {
	case 0:
		for j := 0; j < cols; j++ {
			acc := init
			for i := 0; i < rows; i++ {
				acc = step(acc, m.At(i, j))
				out.Set(i, j, acc)
			}
		}
	case 1:
		for i := 0; i < rows; i++ {
			acc := init
			for j := 0; j < cols; j++ {
				acc = step(acc, m.At(i, j))
				out.Set(i, j, acc)
			}
		}
	default:
		return nil, fmt.Errorf("axis %d is out of bounds for a 2-dimensional matrix", axis)
	}
	return out, nil
}
