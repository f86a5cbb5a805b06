package numfn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func registerTrig(ns *Namespace) {
	ns.add("sin", "Trigonometric sine, element-wise.", unary(math.Sin))
	ns.add("cos", "Trigonometric cosine, element-wise.", unary(math.Cos))
	ns.add("tan", "Trigonometric tangent, element-wise.", unary(math.Tan))
	ns.add("arcsin", "Inverse sine, element-wise.", unary(math.Asin))
	ns.add("arccos", "Inverse cosine, element-wise.", unary(math.Acos))
	ns.add("arctan", "Inverse tangent, element-wise.", unary(math.Atan))
	ns.add("arctan2", "Element-wise arc tangent of y/x choosing the quadrant correctly.", binary(math.Atan2))
	ns.add("hypot", "Given the legs of a right triangle, return its hypotenuse.", binary(math.Hypot))
	ns.add("degrees", "Convert angles from radians to degrees.", unary(radToDeg))
	ns.add("rad2deg", "Convert angles from radians to degrees.", unary(radToDeg))
	ns.add("radians", "Convert angles from degrees to radians.", unary(degToRad))
	ns.add("deg2rad", "Convert angles from degrees to radians.", unary(degToRad))

	ns.add("sinh", "Hyperbolic sine, element-wise.", unary(math.Sinh))
	ns.add("cosh", "Hyperbolic cosine, element-wise.", unary(math.Cosh))
	ns.add("tanh", "Hyperbolic tangent, element-wise.", unary(math.Tanh))
	ns.add("arcsinh", "Inverse hyperbolic sine, element-wise.", unary(math.Asinh))
	ns.add("arccosh", "Inverse hyperbolic cosine, element-wise.", unary(math.Acosh))
	ns.add("arctanh", "Inverse hyperbolic tangent, element-wise.", unary(math.Atanh))

	ns.add("unwrap", "Unwrap by taking the complement of large deltas with respect to the period.", unwrapFn)
}

func radToDeg(v float64) float64 { return v * 180 / math.Pi }
func degToRad(v float64) float64 { return v * math.Pi / 180 }

// unwrapFn unwraps phase row-wise: whenever the jump between consecutive
// values exceeds discont, a multiple of 2*pi is subtracted.
func unwrapFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	discont := c.KwFloat("discont", math.Pi)
	warnIgnored(c, "discont", "axis")

	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		offset := 0.0
		prev := m.At(i, 0)
		out.Set(i, 0, prev)
		for j := 1; j < cols; j++ {
			v := m.At(i, j)
			delta := v - prev
			if delta > discont {
				offset -= 2 * math.Pi * math.Ceil((delta-math.Pi)/(2*math.Pi))
			} else if delta < -discont {
				offset += 2 * math.Pi * math.Ceil((-delta-math.Pi)/(2*math.Pi))
			}
			out.Set(i, j, v+offset)
			prev = v
		}
	}
	return out, nil
}
