package numfn

import "math"

func registerExpLog(ns *Namespace) {
	ns.add("exp", "Calculate the exponential of all elements.", unary(math.Exp))
	ns.add("expm1", "Calculate exp(x)-1 with precision for small x.", unary(math.Expm1))
	ns.add("exp2", "Calculate 2**x for all elements.", unary(math.Exp2))
	ns.add("log", "Natural logarithm, element-wise.", unary(math.Log))
	ns.add("log10", "Base-10 logarithm, element-wise.", unary(math.Log10))
	ns.add("log2", "Base-2 logarithm, element-wise.", unary(math.Log2))
	ns.add("log1p", "Calculate log(1+x) with precision for small x.", unary(math.Log1p))
	ns.add("logaddexp", "Logarithm of the sum of exponentiations of the inputs.",
		binary(func(a, b float64) float64 { return logAddExp(a, b, math.Exp, math.Log) }))
	ns.add("logaddexp2", "Logarithm base 2 of the sum of exponentiations of the inputs.",
		binary(func(a, b float64) float64 { return logAddExp(a, b, math.Exp2, math.Log2) }))
}

// logAddExp computes log(exp(a)+exp(b)) without overflowing for large
// magnitudes by factoring out the larger exponent.
func logAddExp(a, b float64, exp, log func(float64) float64) float64 {
	hi, lo := a, b
	if b > a {
		hi, lo = b, a
	}
	if math.IsInf(hi, -1) {
		return hi
	}
	return hi + log(1+exp(lo-hi))
}
