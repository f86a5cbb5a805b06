package numfn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func registerArithmetic(ns *Namespace) {
	ns.add("add", "Add arguments element-wise.", binary(func(a, b float64) float64 { return a + b }))
	ns.add("subtract", "Subtract arguments element-wise.", binary(func(a, b float64) float64 { return a - b }))
	ns.add("multiply", "Multiply arguments element-wise.", binary(func(a, b float64) float64 { return a * b }))
	ns.add("divide", "Divide arguments element-wise.", binary(func(a, b float64) float64 { return a / b }))
	ns.add("true_divide", "Divide arguments element-wise.", binary(func(a, b float64) float64 { return a / b }))
	ns.add("floor_divide", "Return the largest integer smaller or equal to the division of the inputs.",
		binary(func(a, b float64) float64 { return math.Floor(a / b) }))
	ns.add("power", "First array elements raised to powers from second array, element-wise.", binary(math.Pow))
	ns.add("float_power", "First array elements raised to powers from second array, element-wise.", binary(math.Pow))
	ns.add("mod", "Return element-wise remainder of division (sign follows the divisor).", binary(floorMod))
	ns.add("remainder", "Return element-wise remainder of division (sign follows the divisor).", binary(floorMod))
	ns.add("fmod", "Return the element-wise remainder of division (sign follows the dividend).", binary(math.Mod))
	ns.add("reciprocal", "Return the reciprocal of the argument, element-wise.",
		unary(func(v float64) float64 { return 1 / v }))
	ns.add("negative", "Numerical negative, element-wise.", unary(func(v float64) float64 { return -v }))
	ns.add("positive", "Numerical positive, element-wise.", unary(func(v float64) float64 { return v }))

	ns.add("divmod", "Return element-wise quotient and remainder simultaneously.", divmodFn)
	ns.add("modf", "Return the fractional and integral parts of an array, element-wise.", modfFn)
}

// floorMod is floored modulo: the result takes the divisor's sign.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func divmodFn(c *CallContext) (any, error) {
	a, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	b, err := c.Dense(1)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	quot, err := broadcast(a, b, func(x, y float64) float64 { return math.Floor(x / y) })
	if err != nil {
		return nil, err
	}
	rem, err := broadcast(a, b, floorMod)
	if err != nil {
		return nil, err
	}
	return []any{quot, rem}, nil
}

func modfFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	var frac, whole mat.Dense
	frac.Apply(func(_, _ int, v float64) float64 {
		_, f := math.Modf(v)
		return f
	}, m)
	whole.Apply(func(_, _ int, v float64) float64 {
		w, _ := math.Modf(v)
		return w
	}, m)
	return []any{&frac, &whole}, nil
}
