package numfn

import "math"

func registerRounding(ns *Namespace) {
	ns.add("around", "Evenly round to the given number of decimals.", aroundFn)
	ns.add("rint", "Round elements to the nearest integer.", unary(math.RoundToEven))
	ns.add("fix", "Round to nearest integer towards zero.", unary(math.Trunc))
	ns.add("floor", "Return the floor of the input, element-wise.", unary(math.Floor))
	ns.add("ceil", "Return the ceiling of the input, element-wise.", unary(math.Ceil))
	ns.add("trunc", "Return the truncated value of the input, element-wise.", unary(math.Trunc))
}

func aroundFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	decimals := c.KwInt("decimals", 0)
	warnIgnored(c, "decimals")
	scale := math.Pow(10, float64(decimals))
	return unaryApply(m, func(v float64) float64 {
		return math.RoundToEven(v*scale) / scale
	}), nil
}
