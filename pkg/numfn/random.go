package numfn

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// rng drives every random namespace command. Tests swap it for a seeded
// source through SetRandSource.
var rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Unix())))

// SetRandSource replaces the random source, for deterministic tests.
func SetRandSource(src rand.Source) {
	rng = rand.New(src)
}

func registerRandom(ns *Namespace) {
	ns.add("normal", "Draw random samples from a normal (Gaussian) distribution.", normalFn)
	ns.add("rand", "Random values in a given shape, sampled uniformly over [0, 1).", randFn)
	ns.add("randn", "Return a sample (or samples) from the standard normal distribution.", randnFn)
	ns.add("randint", "Return random integers from low (inclusive) to high (exclusive).", randintFn)
	ns.add("random", "Return random floats in the half-open interval [0.0, 1.0).", randomFn)
	ns.add("random_sample", "Return random floats in the half-open interval [0.0, 1.0).", randomFn)
	ns.add("ranf", "Return random floats in the half-open interval [0.0, 1.0).", randomFn)
	ns.add("sample", "Return random floats in the half-open interval [0.0, 1.0).", randomFn)
	ns.add("choice", "Generate a random sample from a given 1-D array.", choiceFn)
}

// sizeShape resolves the size keyword to matrix dimensions. No size
// means a single draw.
func sizeShape(c *CallContext) (int, int, bool, error) {
	shape := c.KwIntList("size")
	if shape == nil {
		return 0, 0, false, nil
	}
	rows, cols, err := shapeDims(shape)
	if err != nil {
		return 0, 0, false, err
	}
	return rows, cols, true, nil
}

func drawShaped(c *CallContext, draw func() float64) (any, error) {
	rows, cols, shaped, err := sizeShape(c)
	if err != nil {
		return nil, err
	}
	if !shaped {
		return draw(), nil
	}
	return fillDense(rows, cols, draw), nil
}

func fillDense(rows, cols int, draw func() float64) any {
	out := make([]float64, rows*cols)
	for i := range out {
		out[i] = draw()
	}
	if rows == 1 {
		return out
	}
	return denseFromSlice(rows, cols, out)
}

func normalFn(c *CallContext) (any, error) {
	loc := 0.0
	if m, ok := c.KwDense("loc"); ok {
		loc = m.At(0, 0)
	}
	scale := 1.0
	if m, ok := c.KwDense("scale"); ok {
		scale = m.At(0, 0)
	}
	warnIgnored(c, "loc", "scale", "size")
	if scale < 0 {
		return nil, fmt.Errorf("scale must be non-negative")
	}
	dist := distuv.Normal{Mu: loc, Sigma: scale, Src: rng}
	return drawShaped(c, dist.Rand)
}

func randFn(c *CallContext) (any, error) {
	warnIgnored(c)
	return drawDims(c, rng.Float64)
}

func randnFn(c *CallContext) (any, error) {
	warnIgnored(c)
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	return drawDims(c, dist.Rand)
}

// drawDims fills a matrix shaped by the variadic dimension arguments,
// or draws a single value when none are given.
func drawDims(c *CallContext, draw func() float64) (any, error) {
	dims := c.Dims()
	switch len(dims) {
	case 0:
		return draw(), nil
	case 1:
		if dims[0] <= 0 {
			return nil, fmt.Errorf("dimensions must be positive")
		}
		return fillDense(1, dims[0], draw), nil
	case 2:
		if dims[0] <= 0 || dims[1] <= 0 {
			return nil, fmt.Errorf("dimensions must be positive")
		}
		return fillDense(dims[0], dims[1], draw), nil
	default:
		return nil, fmt.Errorf("only 1-D and 2-D shapes are supported, got %d dimensions", len(dims))
	}
}

func randintFn(c *CallContext) (any, error) {
	low, err := c.Int(0)
	if err != nil {
		return nil, err
	}
	high, hasHigh := 0, c.HasKw("high")
	if hasHigh {
		high = c.KwInt("high", 0)
	} else {
		low, high = 0, low
	}
	warnIgnored(c, "high", "size", "dtype")
	if high <= low {
		return nil, fmt.Errorf("low >= high")
	}

	span := high - low
	draw := func() float64 { return float64(low + rng.IntN(span)) }
	rows, cols, shaped, err := sizeShape(c)
	if err != nil {
		return nil, err
	}
	if !shaped {
		return int(draw()), nil
	}
	return fillDense(rows, cols, draw), nil
}

func randomFn(c *CallContext) (any, error) {
	warnIgnored(c, "size")
	return drawShaped(c, rng.Float64)
}

func choiceFn(c *CallContext) (any, error) {
	v, err := c.arg(0)
	if err != nil {
		return nil, err
	}
	var pool []float64
	switch x := v.(type) {
	case int:
		if x <= 0 {
			return nil, fmt.Errorf("a must be greater than 0")
		}
		pool = make([]float64, x)
		for i := range pool {
			pool[i] = float64(i)
		}
	case []float64:
		pool = x
	default:
		return nil, fmt.Errorf("expected array or int, got %T", v)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("a cannot be empty")
	}

	replace := c.KwBool("replace", true)
	warnIgnored(c, "size", "replace", "p")

	var weights []float64
	if pm, ok := c.KwDense("p"); ok {
		weights = flatten(pm)
		if len(weights) != len(pool) {
			return nil, fmt.Errorf("a and p must have the same size")
		}
	}

	rows, cols, shaped, err := sizeShape(c)
	if err != nil {
		return nil, err
	}
	count := 1
	if shaped {
		count = rows * cols
	}
	if !replace && count > len(pool) {
		return nil, fmt.Errorf("cannot take a larger sample than population when replace=false")
	}

	idx, err := chooseIndices(len(pool), count, replace, weights)
	if err != nil {
		return nil, err
	}
	if !shaped {
		return pool[idx[0]], nil
	}
	out := make([]float64, count)
	for i, j := range idx {
		out[i] = pool[j]
	}
	if rows == 1 {
		return out, nil
	}
	return denseFromSlice(rows, cols, out), nil
}

func chooseIndices(n, count int, replace bool, weights []float64) ([]int, error) {
	idx := make([]int, count)
	switch {
	case replace && weights == nil:
		for i := range idx {
			idx[i] = rng.IntN(n)
		}
	case replace:
		cum, total := cumulative(weights)
		if total <= 0 {
			return nil, fmt.Errorf("probabilities do not sum to a positive value")
		}
		for i := range idx {
			idx[i] = searchCumulative(cum, rng.Float64()*total)
		}
	case weights == nil:
		perm := rng.Perm(n)
		copy(idx, perm[:count])
	default:
		w := sampleuv.NewWeighted(weights, rng)
		for i := range idx {
			j, ok := w.Take()
			if !ok {
				return nil, fmt.Errorf("fewer non-zero probabilities than samples")
			}
			idx[i] = j
		}
	}
	return idx, nil
}

func cumulative(weights []float64) ([]float64, float64) {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	return cum, total
}

func searchCumulative(cum []float64, target float64) int {
	for i, v := range cum {
		if target < v {
			return i
		}
	}
	return len(cum) - 1
}
