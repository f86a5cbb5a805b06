package numfn

import (
	"fmt"
	"os"

	"github.com/numstack/numctl/pkg/serializer"
	"gonum.org/v1/gonum/mat"
)

func registerConstruct(ns *Namespace) {
	ns.add("eye", "Return a 2-D array with ones on the k-th diagonal and zeros elsewhere.", eyeFn)
	ns.add("identity", "Return the identity array.", identityFn)
	ns.add("ones", "Return a new array of given shape, filled with ones.", fillFn(1))
	ns.add("zeros", "Return a new array of given shape, filled with zeros.", fillFn(0))
	ns.add("dot", "Matrix product of two arrays.", dotFn)
	ns.add("trace", "Return the sum along the k-th diagonal.", traceFn)
	ns.add("transpose", "Reverse the axes of an array.", transposeFn)
	ns.add("savetxt", "Save an array to a text file.", savetxtFn)
}

func eyeFn(c *CallContext) (any, error) {
	n, err := c.Int(0)
	if err != nil {
		return nil, err
	}
	m := c.KwInt("M", n)
	k := c.KwInt("k", 0)
	warnIgnored(c, "M", "k", "dtype", "order")
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("eye dimensions must be positive")
	}
	out := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		j := i + k
		if j >= 0 && j < m {
			out.Set(i, j, 1)
		}
	}
	return out, nil
}

func identityFn(c *CallContext) (any, error) {
	n, err := c.Int(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "dtype")
	if n <= 0 {
		return nil, fmt.Errorf("identity dimension must be positive")
	}
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out, nil
}

func fillFn(value float64) func(*CallContext) (any, error) {
	return func(c *CallContext) (any, error) {
		v, err := c.arg(0)
		if err != nil {
			return nil, err
		}
		shape, ok := v.([]int)
		if !ok {
			return nil, fmt.Errorf("expected shape, got %T", v)
		}
		warnIgnored(c, "dtype", "order")

		rows, cols, err := shapeDims(shape)
		if err != nil {
			return nil, err
		}
		out := mat.NewDense(rows, cols, nil)
		if value != 0 {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					out.Set(i, j, value)
				}
			}
		}
		return out, nil
	}
}

func shapeDims(shape []int) (int, int, error) {
	switch len(shape) {
	case 1:
		if shape[0] <= 0 {
			return 0, 0, fmt.Errorf("shape dimensions must be positive")
		}
		return 1, shape[0], nil
	case 2:
		if shape[0] <= 0 || shape[1] <= 0 {
			return 0, 0, fmt.Errorf("shape dimensions must be positive")
		}
		return shape[0], shape[1], nil
	default:
		return 0, 0, fmt.Errorf("only 1-D and 2-D shapes are supported, got %d dimensions", len(shape))
	}
}

func dotFn(c *CallContext) (any, error) {
	a, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	b, err := c.Dense(1)
	if err != nil {
		return nil, err
	}
	_, ac := a.Dims()
	br, _ := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("shapes are not aligned for matrix product")
	}
	var out mat.Dense
	out.Mul(a, b)
	return &out, nil
}

func traceFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	offset := c.KwInt("offset", 0)
	warnIgnored(c, "offset", "axis", "dtype")
	return diagSum(m, offset), nil
}

func diagSum(m *mat.Dense, offset int) float64 {
	rows, cols := m.Dims()
	acc := 0.0
	for i := 0; i < rows; i++ {
		j := i + offset
		if j >= 0 && j < cols {
			acc += m.At(i, j)
		}
	}
	return acc
}

func transposeFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	var out mat.Dense
	out.CloneFrom(m.T())
	return &out, nil
}

func savetxtFn(c *CallContext) (any, error) {
	path, err := c.Str(0)
	if err != nil {
		return nil, err
	}
	m, err := c.Dense(1)
	if err != nil {
		return nil, err
	}
	numFmt := c.KwStr("fmt", "%.18e")
	delim := c.KwStr("delimiter", " ")
	newline := c.KwStr("newline", "\n")
	header := c.KwStr("header", "")
	footer := c.KwStr("footer", "")
	comments := c.KwStr("comments", "# ")
	warnIgnored(c, "fmt", "delimiter", "newline", "header", "footer", "comments")

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("savetxt: %w", err)
	}
	defer f.Close()

	if header != "" {
		if _, err := fmt.Fprintf(f, "%s%s%s", comments, header, newline); err != nil {
			return nil, fmt.Errorf("savetxt: %w", err)
		}
	}
	if err := serializer.WriteMatrix(f, m, numFmt, delim, newline); err != nil {
		return nil, fmt.Errorf("savetxt: %w", err)
	}
	if footer != "" {
		if _, err := fmt.Fprintf(f, "%s%s%s", comments, footer, newline); err != nil {
			return nil, fmt.Errorf("savetxt: %w", err)
		}
	}
	return nil, f.Sync()
}
