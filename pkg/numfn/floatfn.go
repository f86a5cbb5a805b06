package numfn

import "math"

func registerFloatFn(ns *Namespace) {
	ns.add("signbit", "Returns 1 where the sign bit is set, element-wise.",
		unary(func(v float64) float64 {
			if math.Signbit(v) {
				return 1
			}
			return 0
		}))
	ns.add("copysign", "Change the sign of the first argument to that of the second, element-wise.",
		binary(math.Copysign))
	ns.add("ldexp", "Returns x1 * 2**x2, element-wise.",
		binary(func(frac, exp float64) float64 { return math.Ldexp(frac, int(exp)) }))
	ns.add("nextafter", "Return the next floating-point value after x1 towards x2, element-wise.",
		binary(math.Nextafter))
	ns.add("spacing", "Return the distance to the nearest adjacent number, element-wise.",
		unary(func(v float64) float64 {
			return math.Abs(math.Nextafter(v, math.Inf(1)) - v)
		}))

	ns.add("lcm", "Returns the lowest common multiple of |x1| and |x2|, element-wise.",
		binary(func(a, b float64) float64 { return float64(lcm(int64(a), int64(b))) }))
	ns.add("gcd", "Returns the greatest common divisor of |x1| and |x2|, element-wise.",
		binary(func(a, b float64) float64 { return float64(gcd(int64(a), int64(b))) }))
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	g := gcd(a, b)
	out := a / g * b
	if out < 0 {
		out = -out
	}
	return out
}
