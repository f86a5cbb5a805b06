package numfn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func registerMatlib(ns *Namespace) {
	ns.add("rand", "Return a matrix of random values with given shape, uniform over [0, 1).", matlibRandFn)
	ns.add("randn", "Return a matrix of standard-normal random values with given shape.", matlibRandnFn)
	ns.add("repmat", "Repeat a matrix M x N times.", repmatFn)
}

// Unlike the random namespace, matlib always produces a matrix, even
// for a single draw.
func matlibShape(c *CallContext) (int, int, error) {
	dims := c.Dims()
	switch len(dims) {
	case 0:
		return 1, 1, nil
	case 1:
		if dims[0] <= 0 {
			return 0, 0, fmt.Errorf("dimensions must be positive")
		}
		return 1, dims[0], nil
	case 2:
		if dims[0] <= 0 || dims[1] <= 0 {
			return 0, 0, fmt.Errorf("dimensions must be positive")
		}
		return dims[0], dims[1], nil
	default:
		return 0, 0, fmt.Errorf("only 1-D and 2-D shapes are supported, got %d dimensions", len(dims))
	}
}

func matlibRandFn(c *CallContext) (any, error) {
	warnIgnored(c)
	rows, cols, err := matlibShape(c)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, rng.Float64())
		}
	}
	return out, nil
}

func matlibRandnFn(c *CallContext) (any, error) {
	warnIgnored(c)
	rows, cols, err := matlibShape(c)
	if err != nil {
		return nil, err
	}
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, dist.Rand())
		}
	}
	return out, nil
}

func repmatFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	nr, err := c.Int(1)
	if err != nil {
		return nil, err
	}
	nc, err := c.Int(2)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if nr <= 0 || nc <= 0 {
		return nil, fmt.Errorf("repeat counts must be positive")
	}

	rows, cols := m.Dims()
	out := mat.NewDense(rows*nr, cols*nc, nil)
	for bi := 0; bi < nr; bi++ {
		for bj := 0; bj < nc; bj++ {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					out.Set(bi*rows+i, bj*cols+j, m.At(i, j))
				}
			}
		}
	}
	return out, nil
}
