package schema

import "github.com/numstack/numctl/pkg/coerce"

// Shorthand for the common entry shapes.
func unary(universal ...string) Entry {
	u := universal
	if len(u) == 0 {
		u = UniversalKeys
	}
	return Entry{Positional: []coerce.Coercer{coerce.Matrix}, Universal: u}
}

func binary(universal ...string) Entry {
	u := universal
	if len(u) == 0 {
		u = UniversalKeys
	}
	return Entry{Positional: []coerce.Coercer{coerce.Matrix, coerce.Matrix}, Universal: u}
}

func bare(pos ...coerce.Coercer) Entry {
	return Entry{Positional: pos}
}

func kw(pairs map[string]coerce.Coercer, pos ...coerce.Coercer) Entry {
	return Entry{Positional: pos, Keywords: pairs}
}

var commands = map[string]Entry{
	// arithmetic
	"add":          binary(),
	"subtract":     binary(),
	"multiply":     binary(),
	"divide":       binary(),
	"true_divide":  binary(),
	"floor_divide": binary(),
	"power":        binary(),
	"float_power":  binary(),
	"mod":          binary(),
	"fmod":         binary(),
	"remainder":    binary(),
	"divmod":       binary(),
	"reciprocal":   unary(),
	"negative":     unary(),
	"positive":     unary(),
	"modf":         unary(),

	// miscellaneous
	"sqrt":     unary(),
	"cbrt":     unary(),
	"square":   unary(),
	"absolute": unary(),
	"fabs":     unary(),
	"sign":     unary(),
	"heaviside": binary(),
	"maximum":  binary(),
	"minimum":  binary(),
	"fmax":     binary(),
	"fmin":     binary(),
	"clip": Entry{
		Positional: []coerce.Coercer{coerce.Matrix},
		Keywords:   map[string]coerce.Coercer{"a_min": coerce.Matrix, "a_max": coerce.Matrix},
		Universal:  UniversalKeys,
	},
	"convolve": kw(map[string]coerce.Coercer{"mode": coerce.String}, coerce.Array, coerce.Array),
	"interp": kw(map[string]coerce.Coercer{
		"left":   coerce.Float,
		"right":  coerce.Float,
		"period": coerce.Float,
	}, coerce.Array, coerce.Array, coerce.Array),
	"real_if_close": kw(map[string]coerce.Coercer{"tol": coerce.Float}, coerce.Matrix),
	"sinc":          bare(coerce.Matrix),

	// trigonometric
	"sin":     unary(),
	"cos":     unary(),
	"tan":     unary(),
	"arcsin":  unary(),
	"arccos":  unary(),
	"arctan":  unary(),
	"hypot":   binary(),
	"arctan2": binary(),
	"degrees": unary(),
	"radians": unary(),
	"deg2rad": unary(),
	"rad2deg": unary(),
	"unwrap": kw(map[string]coerce.Coercer{
		"discont": coerce.Float,
		"axis":    coerce.Int,
	}, coerce.Matrix),

	// hyperbolic
	"sinh":    unary(),
	"cosh":    unary(),
	"tanh":    unary(),
	"arcsinh": unary(),
	"arccosh": unary(),
	"arctanh": unary(),

	// rounding
	"around": kw(map[string]coerce.Coercer{"decimals": coerce.Int}, coerce.Matrix),
	"rint":   unary(),
	"fix":    bare(coerce.Matrix),
	"floor":  unary(),
	"ceil":   unary(),
	"trunc":  unary(),

	// sums, products, differences
	"sum": Entry{
		Positional: []coerce.Coercer{coerce.Matrix},
		Keywords:   map[string]coerce.Coercer{"initial": coerce.Float},
		Universal:  []string{"axis", "dtype", "keepdims", "where"},
	},
	"prod": Entry{
		Positional: []coerce.Coercer{coerce.Matrix},
		Keywords:   map[string]coerce.Coercer{"initial": coerce.Float},
		Universal:  []string{"axis", "dtype", "keepdims", "where"},
	},
	"cumsum":  unary("axis", "dtype"),
	"cumprod": unary("axis", "dtype"),
	"diff": Entry{
		Positional: []coerce.Coercer{coerce.Matrix},
		Keywords: map[string]coerce.Coercer{
			"n":       coerce.Int,
			"prepend": coerce.Matrix,
			"append":  coerce.Matrix,
		},
		Universal: []string{"axis"},
	},
	"gradient": kw(map[string]coerce.Coercer{
		"spacing":    coerce.Matrix,
		"axis":       coerce.Int,
		"edge_order": coerce.Int,
	}, coerce.Matrix),
	"cross": kw(map[string]coerce.Coercer{
		"axisa": coerce.Int,
		"axisb": coerce.Int,
		"axisc": coerce.Int,
		"axis":  coerce.Int,
	}, coerce.Matrix, coerce.Matrix),
	"trapz": kw(map[string]coerce.Coercer{
		"x":    coerce.Matrix,
		"dx":   coerce.Float,
		"axis": coerce.Int,
	}, coerce.Matrix),

	// exponents and logarithms
	"exp":        unary(),
	"expm1":      unary(),
	"exp2":       unary(),
	"log":        unary(),
	"log10":      unary(),
	"log2":       unary(),
	"log1p":      unary(),
	"logaddexp":  binary(),
	"logaddexp2": binary(),

	// floating point routines
	"signbit":   unary(),
	"copysign":  binary(),
	"ldexp":     binary(),
	"nextafter": binary(),
	"spacing":   unary(),

	// rational routines
	"lcm": binary(),
	"gcd": binary(),

	// construction and top-level matrix routines
	"eye": kw(map[string]coerce.Coercer{
		"M":     coerce.Int,
		"k":     coerce.Int,
		"dtype": coerce.String,
		"order": coerce.String,
	}, coerce.Int),
	"identity": kw(map[string]coerce.Coercer{"dtype": coerce.String}, coerce.Int),
	"ones": kw(map[string]coerce.Coercer{
		"dtype": coerce.String,
		"order": coerce.String,
	}, coerce.IntList),
	"zeros": kw(map[string]coerce.Coercer{
		"dtype": coerce.String,
		"order": coerce.String,
	}, coerce.IntList),
	"dot": bare(coerce.Matrix, coerce.Matrix),
	"trace": kw(map[string]coerce.Coercer{
		"offset": coerce.Int,
		"axis":   coerce.Int,
		"dtype":  coerce.String,
	}, coerce.Matrix),
	"transpose": bare(coerce.Matrix),
	"savetxt": kw(map[string]coerce.Coercer{
		"fmt":       coerce.String,
		"delimiter": coerce.String,
		"newline":   coerce.String,
		"header":    coerce.String,
		"footer":    coerce.String,
		"comments":  coerce.String,
	}, coerce.String, coerce.Matrix),

	// linalg
	"linalg.cholesky":    bare(coerce.Matrix),
	"linalg.cond":        kw(map[string]coerce.Coercer{"p": coerce.Order}, coerce.Matrix),
	"linalg.det":         bare(coerce.Matrix),
	"linalg.eig":         bare(coerce.Matrix),
	"linalg.eigh":        kw(map[string]coerce.Coercer{"UPLO": coerce.String}, coerce.Matrix),
	"linalg.eigvals":     bare(coerce.Matrix),
	"linalg.eigvalsh":    kw(map[string]coerce.Coercer{"UPLO": coerce.String}, coerce.Matrix),
	"linalg.inv":         bare(coerce.Matrix),
	"linalg.lstsq":       kw(map[string]coerce.Coercer{"rcond": coerce.Float}, coerce.Matrix, coerce.Matrix),
	"linalg.matrix_rank": bare(coerce.Matrix),
	"linalg.norm": kw(map[string]coerce.Coercer{
		"ord":      coerce.Order,
		"axis":     coerce.Int,
		"keepdims": coerce.Bool,
	}, coerce.Matrix),
	"linalg.pinv": bare(coerce.Matrix),
	"linalg.qr":   kw(map[string]coerce.Coercer{"mode": coerce.String}, coerce.Matrix),
	"linalg.slogdet": bare(coerce.Matrix),
	"linalg.solve":   bare(coerce.Matrix, coerce.Matrix),
	"linalg.svd": kw(map[string]coerce.Coercer{
		"full_matrices": coerce.Bool,
		"compute_uv":    coerce.Bool,
		"hermitian":     coerce.Bool,
	}, coerce.Matrix),

	// matlib
	"matlib.rand":   Entry{Variadic: &coerce.IntArgs},
	"matlib.randn":  Entry{Variadic: &coerce.IntArgs},
	"matlib.repmat": bare(coerce.Matrix, coerce.Int, coerce.Int),

	// matrix methods
	"matrix.all":       kw(map[string]coerce.Coercer{"axis": coerce.Int}, coerce.Matrix),
	"matrix.any":       kw(map[string]coerce.Coercer{"axis": coerce.Int}, coerce.Matrix),
	"matrix.argmax":    kw(map[string]coerce.Coercer{"axis": coerce.Int}, coerce.Matrix),
	"matrix.argmin":    kw(map[string]coerce.Coercer{"axis": coerce.Int}, coerce.Matrix),
	"matrix.min":       bare(coerce.Matrix),
	"matrix.max":       bare(coerce.Matrix),
	"matrix.mean":      bare(coerce.Matrix),
	"matrix.std":       bare(coerce.Matrix),
	"matrix.var":       bare(coerce.Matrix),
	"matrix.sum":       bare(coerce.Matrix),
	"matrix.prod":      bare(coerce.Matrix),
	"matrix.cumsum":    bare(coerce.Matrix),
	"matrix.cumprod":   bare(coerce.Matrix),
	"matrix.diagonal":  bare(coerce.Matrix),
	"matrix.flatten":   bare(coerce.Matrix),
	"matrix.ravel":     bare(coerce.Matrix),
	"matrix.item":      bare(coerce.Matrix),
	"matrix.nonzero":   bare(coerce.Matrix),
	"matrix.ptp":       bare(coerce.Matrix),
	"matrix.round":     bare(coerce.Matrix),
	"matrix.sort":      bare(coerce.Matrix),
	"matrix.squeeze":   bare(coerce.Matrix),
	"matrix.swapaxes":  bare(coerce.Matrix),
	"matrix.trace":     bare(coerce.Matrix),
	"matrix.transpose": bare(coerce.Matrix),

	// random
	"random.normal": kw(map[string]coerce.Coercer{
		"loc":   coerce.Matrix,
		"scale": coerce.Matrix,
		"size":  coerce.IntList,
	}),
	"random.rand":  Entry{Variadic: &coerce.IntArgs},
	"random.randn": Entry{Variadic: &coerce.IntArgs},
	"random.randint": kw(map[string]coerce.Coercer{
		"high":  coerce.Int,
		"size":  coerce.IntList,
		"dtype": coerce.String,
	}, coerce.Int),
	"random.random":        kw(map[string]coerce.Coercer{"size": coerce.IntList}),
	"random.random_sample": kw(map[string]coerce.Coercer{"size": coerce.IntList}),
	"random.ranf":          kw(map[string]coerce.Coercer{"size": coerce.IntList}),
	"random.sample":        kw(map[string]coerce.Coercer{"size": coerce.IntList}),
	"random.choice": kw(map[string]coerce.Coercer{
		"size":    coerce.IntList,
		"replace": coerce.Bool,
		"p":       coerce.Array,
	}, coerce.ArrayOrInt),
}
