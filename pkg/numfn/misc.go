package numfn

import (
	"fmt"
	"math"
)

func registerMisc(ns *Namespace) {
	ns.add("sqrt", "Return the non-negative square-root, element-wise.", unary(math.Sqrt))
	ns.add("cbrt", "Return the cube-root, element-wise.", unary(math.Cbrt))
	ns.add("square", "Return the element-wise square of the input.",
		unary(func(v float64) float64 { return v * v }))
	ns.add("absolute", "Calculate the absolute value element-wise.", unary(math.Abs))
	ns.add("fabs", "Compute the absolute values element-wise.", unary(math.Abs))
	ns.add("sign", "Returns an element-wise indication of the sign of a number.", unary(signOf))
	ns.add("heaviside", "Compute the Heaviside step function.",
		binary(func(x, h float64) float64 {
			switch {
			case x < 0:
				return 0
			case x > 0:
				return 1
			default:
				return h
			}
		}))
	ns.add("maximum", "Element-wise maximum of array elements (NaN propagates).",
		binary(func(a, b float64) float64 {
			if math.IsNaN(a) || math.IsNaN(b) {
				return math.NaN()
			}
			return math.Max(a, b)
		}))
	ns.add("minimum", "Element-wise minimum of array elements (NaN propagates).",
		binary(func(a, b float64) float64 {
			if math.IsNaN(a) || math.IsNaN(b) {
				return math.NaN()
			}
			return math.Min(a, b)
		}))
	ns.add("fmax", "Element-wise maximum of array elements (NaN ignored).", binary(nanIgnoring(math.Max)))
	ns.add("fmin", "Element-wise minimum of array elements (NaN ignored).", binary(nanIgnoring(math.Min)))
	ns.add("clip", "Clip (limit) the values in an array.", clipFn)
	ns.add("convolve", "Returns the discrete, linear convolution of two one-dimensional sequences.", convolveFn)
	ns.add("interp", "One-dimensional linear interpolation for monotonically increasing sample points.", interpFn)
	ns.add("real_if_close", "Return the input with tiny values snapped to integers within tolerance.", realIfCloseFn)
	ns.add("sinc", "Return the normalized sinc function.", unary(sinc))
}

// nanIgnoring wraps a binary op so a lone NaN operand yields the other
// operand. Both operands NaN still yields NaN.
func nanIgnoring(op func(a, b float64) float64) func(a, b float64) float64 {
	return func(a, b float64) float64 {
		if math.IsNaN(a) {
			return b
		}
		if math.IsNaN(b) {
			return a
		}
		return op(a, b)
	}
}

func signOf(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v // preserves -0 and NaN
	}
}

func sinc(v float64) float64 {
	if v == 0 {
		return 1
	}
	x := math.Pi * v
	return math.Sin(x) / x
}

func clipFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	lo, hasLo := c.KwDense("a_min")
	hi, hasHi := c.KwDense("a_max")
	if !hasLo && !hasHi {
		return nil, fmt.Errorf("clip requires a_min or a_max")
	}
	warnIgnored(c, "a_min", "a_max")

	out := m
	if hasLo {
		out, err = broadcast(out, lo, math.Max)
		if err != nil {
			return nil, err
		}
	}
	if hasHi {
		out, err = broadcast(out, hi, math.Min)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func convolveFn(c *CallContext) (any, error) {
	a, err := c.Vector(0)
	if err != nil {
		return nil, err
	}
	v, err := c.Vector(1)
	if err != nil {
		return nil, err
	}
	mode := c.KwStr("mode", "full")
	warnIgnored(c, "mode")
	if len(a) == 0 || len(v) == 0 {
		return nil, fmt.Errorf("convolve arguments cannot be empty")
	}

	full := make([]float64, len(a)+len(v)-1)
	for i, x := range a {
		for j, y := range v {
			full[i+j] += x * y
		}
	}

	switch mode {
	case "full":
		return full, nil
	case "same":
		n := len(a)
		if len(v) > n {
			n = len(v)
		}
		start := (len(full) - n) / 2
		return full[start : start+n], nil
	case "valid":
		short, long := len(a), len(v)
		if short > long {
			short, long = long, short
		}
		start := short - 1
		return full[start : start+long-short+1], nil
	default:
		return nil, fmt.Errorf("invalid convolve mode %q", mode)
	}
}

func interpFn(c *CallContext) (any, error) {
	x, err := c.Vector(0)
	if err != nil {
		return nil, err
	}
	xp, err := c.Vector(1)
	if err != nil {
		return nil, err
	}
	fp, err := c.Vector(2)
	if err != nil {
		return nil, err
	}
	if len(xp) != len(fp) {
		return nil, fmt.Errorf("interp sample arrays must have equal length")
	}
	if len(xp) == 0 {
		return nil, fmt.Errorf("interp requires at least one sample point")
	}
	left := c.KwFloat("left", fp[0])
	right := c.KwFloat("right", fp[len(fp)-1])
	warnIgnored(c, "left", "right", "period")

	out := make([]float64, len(x))
	for i, xv := range x {
		out[i] = interpAt(xv, xp, fp, left, right)
	}
	return out, nil
}

func interpAt(x float64, xp, fp []float64, left, right float64) float64 {
	if x <= xp[0] {
		if x == xp[0] {
			return fp[0]
		}
		return left
	}
	if x >= xp[len(xp)-1] {
		if x == xp[len(xp)-1] {
			return fp[len(fp)-1]
		}
		return right
	}
	// xp is required to be increasing; find the bracketing interval.
	for i := 1; i < len(xp); i++ {
		if x <= xp[i] {
			t := (x - xp[i-1]) / (xp[i] - xp[i-1])
			return fp[i-1] + t*(fp[i]-fp[i-1])
		}
	}
	return right
}

func realIfCloseFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "tol")
	// Real-valued input is already real; pass through.
	return m, nil
}
