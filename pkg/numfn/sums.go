package numfn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func registerSums(ns *Namespace) {
	ns.add("sum", "Sum of array elements over a given axis.", sumFn)
	ns.add("prod", "Product of array elements over a given axis.", prodFn)
	ns.add("cumsum", "Cumulative sum of the elements along a given axis.", cumsumFn)
	ns.add("cumprod", "Cumulative product of the elements along a given axis.", cumprodFn)
	ns.add("diff", "Calculate the n-th discrete difference along the rows.", diffFn)
	ns.add("gradient", "Return the gradient of the input using central differences.", gradientFn)
	ns.add("trapz", "Integrate along rows using the composite trapezoidal rule.", trapzFn)
	ns.add("cross", "Return the cross product of two (arrays of) 3-vectors.", crossFn)
}

func sumFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	initial := c.KwFloat("initial", 0)
	warnIgnored(c, "initial", "axis", "keepdims", "dtype", "where")
	return reduce(c, m, func(xs []float64) float64 {
		acc := initial
		for _, v := range xs {
			acc += v
		}
		return acc
	})
}

func prodFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	initial := c.KwFloat("initial", 1)
	warnIgnored(c, "initial", "axis", "keepdims", "dtype", "where")
	return reduce(c, m, func(xs []float64) float64 {
		acc := initial
		for _, v := range xs {
			acc *= v
		}
		return acc
	})
}

func cumsumFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axis", "dtype")
	return scan(c, m, func(acc, v float64) float64 { return acc + v }, 0)
}

func cumprodFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axis", "dtype")
	return scan(c, m, func(acc, v float64) float64 { return acc * v }, 1)
}

func diffFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	n := c.KwInt("n", 1)
	if n < 0 {
		return nil, fmt.Errorf("diff order must be non-negative")
	}
	warnIgnored(c, "n", "axis", "prepend", "append")

	if pre, ok := c.KwDense("prepend"); ok {
		m = hstack(pre, m)
	}
	if post, ok := c.KwDense("append"); ok {
		m = hstack(m, post)
	}

	for ; n > 0; n-- {
		rows, cols := m.Dims()
		if cols < 2 {
			return mat.NewDense(rows, 0, nil), nil
		}
		out := mat.NewDense(rows, cols-1, nil)
		for i := 0; i < rows; i++ {
			for j := 1; j < cols; j++ {
				out.Set(i, j-1, m.At(i, j)-m.At(i, j-1))
			}
		}
		m = out
	}
	return m, nil
}

// hstack joins two matrices side by side, promoting a 1x1 operand to a
// column of the other's height.
func hstack(a, b *mat.Dense) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	rows := ar
	if br > rows {
		rows = br
	}
	out := mat.NewDense(rows, ac+bc, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < ac; j++ {
			out.Set(i, j, a.At(i%ar, j))
		}
		for j := 0; j < bc; j++ {
			out.Set(i, ac+j, b.At(i%br, j))
		}
	}
	return out
}

func gradientFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	dx := 1.0
	if sp, ok := c.KwDense("spacing"); ok {
		dx = sp.At(0, 0)
	}
	warnIgnored(c, "spacing", "axis", "edge_order")

	rows, cols := m.Dims()
	if cols < 2 {
		return nil, fmt.Errorf("gradient requires at least 2 points per row")
	}
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, (m.At(i, 1)-m.At(i, 0))/dx)
		for j := 1; j < cols-1; j++ {
			out.Set(i, j, (m.At(i, j+1)-m.At(i, j-1))/(2*dx))
		}
		out.Set(i, cols-1, (m.At(i, cols-1)-m.At(i, cols-2))/dx)
	}
	return out, nil
}

func trapzFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	dx := c.KwFloat("dx", 1)
	xs, hasX := c.KwDense("x")
	warnIgnored(c, "x", "dx", "axis")

	rows, cols := m.Dims()
	if cols < 2 {
		return 0.0, nil
	}
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		acc := 0.0
		for j := 1; j < cols; j++ {
			h := dx
			if hasX {
				h = xs.At(0, j) - xs.At(0, j-1)
			}
			acc += h * (m.At(i, j) + m.At(i, j-1)) / 2
		}
		out[i] = acc
	}
	if rows == 1 {
		return out[0], nil
	}
	return out, nil
}

func crossFn(c *CallContext) (any, error) {
	a, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	b, err := c.Dense(1)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "axisa", "axisb", "axisc", "axis")

	av, bv := flatten(a), flatten(b)
	if len(av) != 3 || len(bv) != 3 {
		return nil, fmt.Errorf("cross requires 3-component vectors")
	}
	return []float64{
		av[1]*bv[2] - av[2]*bv[1],
		av[2]*bv[0] - av[0]*bv[2],
		av[0]*bv[1] - av[1]*bv[0],
	}, nil
}
