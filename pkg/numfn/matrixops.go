package numfn

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

func registerMatrixOps(ns *Namespace) {
	ns.add("all", "Test whether all matrix elements evaluate to True.", allFn)
	ns.add("any", "Test whether any matrix element evaluates to True.", anyFn)
	ns.add("argmax", "Indices of the maximum values along an axis.", argExtremeFn(false))
	ns.add("argmin", "Indices of the minimum values along an axis.", argExtremeFn(true))
	ns.add("min", "Return the minimum value.", reduceFn(sliceMin))
	ns.add("max", "Return the maximum value.", reduceFn(sliceMax))
	ns.add("mean", "Return the average of the matrix elements.", reduceFn(sliceMean))
	ns.add("std", "Return the standard deviation of the matrix elements.", reduceFn(func(xs []float64) float64 {
		return math.Sqrt(sliceVar(xs))
	}))
	ns.add("var", "Return the variance of the matrix elements.", reduceFn(sliceVar))
	ns.add("sum", "Return the sum of the matrix elements.", reduceFn(func(xs []float64) float64 {
		acc := 0.0
		for _, v := range xs {
			acc += v
		}
		return acc
	}))
	ns.add("prod", "Return the product of the matrix elements.", reduceFn(func(xs []float64) float64 {
		acc := 1.0
		for _, v := range xs {
			acc *= v
		}
		return acc
	}))
	ns.add("ptp", "Peak-to-peak (maximum - minimum) value.", reduceFn(func(xs []float64) float64 {
		return sliceMax(xs) - sliceMin(xs)
	}))
	ns.add("cumsum", "Return the cumulative sum of the elements.", func(c *CallContext) (any, error) {
		m, err := c.Dense(0)
		if err != nil {
			return nil, err
		}
		warnIgnored(c)
		return scan(c, m, func(acc, v float64) float64 { return acc + v }, 0)
	})
	ns.add("cumprod", "Return the cumulative product of the elements.", func(c *CallContext) (any, error) {
		m, err := c.Dense(0)
		if err != nil {
			return nil, err
		}
		warnIgnored(c)
		return scan(c, m, func(acc, v float64) float64 { return acc * v }, 1)
	})
	ns.add("diagonal", "Return the main diagonal of the matrix.", diagonalFn)
	ns.add("flatten", "Return a flattened copy of the matrix.", flattenFn)
	ns.add("ravel", "Return a flattened matrix.", flattenFn)
	ns.add("item", "Copy the single element of the matrix to a scalar.", itemFn)
	ns.add("nonzero", "Return the indices of the non-zero elements.", nonzeroFn)
	ns.add("round", "Return the matrix with each element rounded to the nearest integer.", roundFn)
	ns.add("sort", "Sort the matrix along its rows, in place.", sortFn)
	ns.add("squeeze", "Remove axes of length one.", squeezeFn)
	ns.add("swapaxes", "Interchange the two axes of the matrix.", matTransposeFn)
	ns.add("trace", "Return the sum along the main diagonal.", matTraceFn)
	ns.add("transpose", "Return the transposed matrix.", matTransposeFn)
}

func reduceFn(red func([]float64) float64) func(*CallContext) (any, error) {
	return func(c *CallContext) (any, error) {
		m, err := c.Dense(0)
		if err != nil {
			return nil, err
		}
		warnIgnored(c)
		return reduce(c, m, red)
	}
}

func sliceMin(xs []float64) float64 {
	best := math.Inf(1)
	for _, v := range xs {
		if v < best {
			best = v
		}
	}
	return best
}

func sliceMax(xs []float64) float64 {
	best := math.Inf(-1)
	for _, v := range xs {
		if v > best {
			best = v
		}
	}
	return best
}

func sliceMean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	acc := 0.0
	for _, v := range xs {
		acc += v
	}
	return acc / float64(len(xs))
}

// sliceVar is the population variance, matching the default ddof=0.
func sliceVar(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	mean := sliceMean(xs)
	acc := 0.0
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	return acc / float64(len(xs))
}

func allFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axis")
	return truthReduce(c, m, func(xs []float64) bool {
		for _, v := range xs {
			if v == 0 {
				return false
			}
		}
		return true
	})
}

func anyFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axis")
	return truthReduce(c, m, func(xs []float64) bool {
		for _, v := range xs {
			if v != 0 {
				return true
			}
		}
		return false
	})
}

func truthReduce(c *CallContext, m *mat.Dense, red func([]float64) bool) (any, error) {
	out, err := reduce(c, m, func(xs []float64) float64 {
		if red(xs) {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, err
	}
	if v, ok := out.(float64); ok {
		return v != 0, nil
	}
	return out, nil
}

// argExtremeFn returns flat indices without an axis and per-slice
// indices along one.
func argExtremeFn(minimum bool) func(*CallContext) (any, error) {
	better := func(v, best float64) bool {
		if minimum {
			return v < best
		}
		return v > best
	}
	argOf := func(xs []float64) int {
		best, at := xs[0], 0
		for i, v := range xs[1:] {
			if better(v, best) {
				best, at = v, i+1
			}
		}
		return at
	}
	return func(c *CallContext) (any, error) {
		m, err := c.Dense(0)
		if err != nil {
			return nil, err
		}
		warnIgnored(c, "axis")
		rows, cols := m.Dims()
		if rows*cols == 0 {
			return nil, fmt.Errorf("attempt to get argmax/argmin of an empty sequence")
		}

		axis, hasAxis := c.axis()
		if !hasAxis || axis < 0 {
			return argOf(flatten(m)), nil
		}
		switch axis {
		case 0:
			out := make([]int, cols)
			col := make([]float64, rows)
			for j := 0; j < cols; j++ {
				mat.Col(col, j, m)
				out[j] = argOf(col)
			}
			return out, nil
		case 1:
			out := make([]int, rows)
			row := make([]float64, cols)
			for i := 0; i < rows; i++ {
				mat.Row(row, i, m)
				out[i] = argOf(row)
			}
			return out, nil
		default:
			return nil, fmt.Errorf("axis %d is out of bounds for a 2-dimensional matrix", axis)
		}
	}
}

func diagonalFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	rows, cols := m.Dims()
	n := rows
	if cols < n {
		n = cols
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.At(i, i)
	}
	return out, nil
}

func flattenFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "order")
	data := flatten(m)
	return mat.NewDense(1, len(data), data), nil
}

func itemFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	rows, cols := m.Dims()
	if rows*cols != 1 {
		return nil, fmt.Errorf("can only convert a matrix of size 1 to a scalar")
	}
	return m.At(0, 0), nil
}

func nonzeroFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	rows, cols := m.Dims()
	var ri, ci []int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m.At(i, j) != 0 {
				ri = append(ri, i)
				ci = append(ci, j)
			}
		}
	}
	return []any{ri, ci}, nil
}

func roundFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "decimals")
	return unaryApply(m, math.RoundToEven), nil
}

func sortFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axis", "kind")
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, m)
		sort.Float64s(row)
		out.SetRow(i, row)
	}
	return out, nil
}

func squeezeFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axis")
	rows, cols := m.Dims()
	if rows == 1 || cols == 1 {
		return flatten(m), nil
	}
	return m, nil
}

func matTraceFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	return diagSum(m, 0), nil
}

func matTransposeFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	var out mat.Dense
	out.CloneFrom(m.T())
	return &out, nil
}
