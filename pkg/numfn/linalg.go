package numfn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const eps = 2.220446049250313e-16

func registerLinalg(ns *Namespace) {
	ns.add("cholesky", "Cholesky decomposition: lower-triangular L with A = L @ L.T.", choleskyFn)
	ns.add("cond", "Compute the condition number of a matrix.", condFn)
	ns.add("det", "Compute the determinant of an array.", detFn)
	ns.add("eig", "Compute the eigenvalues and right eigenvectors of a square array.", eigFn)
	ns.add("eigh", "Eigenvalues and eigenvectors of a symmetric matrix.", eighFn)
	ns.add("eigvals", "Compute the eigenvalues of a general matrix.", eigvalsFn)
	ns.add("eigvalsh", "Compute the eigenvalues of a symmetric matrix.", eigvalshFn)
	ns.add("inv", "Compute the inverse of a matrix.", invFn)
	ns.add("lstsq", "Return the least-squares solution to a linear matrix equation.", lstsqFn)
	ns.add("matrix_rank", "Return matrix rank using the SVD method.", matrixRankFn)
	ns.add("norm", "Matrix or vector norm.", normFn)
	ns.add("pinv", "Compute the Moore-Penrose pseudo-inverse of a matrix.", pinvFn)
	ns.add("qr", "Compute the QR factorization of a matrix.", qrFn)
	ns.add("slogdet", "Compute the sign and natural logarithm of the determinant.", slogdetFn)
	ns.add("solve", "Solve a linear matrix equation ax = b.", solveFn)
	ns.add("svd", "Singular value decomposition.", svdFn)
}

func squareDense(m *mat.Dense) (int, error) {
	r, c := m.Dims()
	if r != c {
		return 0, fmt.Errorf("last 2 dimensions of the array must be square")
	}
	return r, nil
}

// symFromTriangle builds a symmetric view from one triangle of m, the
// way LAPACK's UPLO argument does.
func symFromTriangle(m *mat.Dense, uplo string) (*mat.SymDense, error) {
	n, err := squareDense(m)
	if err != nil {
		return nil, err
	}
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if uplo == "U" {
				sym.SetSym(i, j, m.At(i, j))
			} else {
				sym.SetSym(i, j, m.At(j, i))
			}
		}
	}
	return sym, nil
}

func singularValues(m *mat.Dense) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDNone); !ok {
		return nil, fmt.Errorf("SVD did not converge")
	}
	return svd.Values(nil), nil
}

func choleskyFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	sym, err := symFromTriangle(m, "L")
	if err != nil {
		return nil, err
	}
	var ch mat.Cholesky
	if ok := ch.Factorize(sym); !ok {
		return nil, fmt.Errorf("matrix is not positive definite")
	}
	n := sym.SymmetricDim()
	l := mat.NewTriDense(n, mat.Lower, nil)
	ch.LTo(l)
	var out mat.Dense
	out.CloneFrom(l)
	return &out, nil
}

func condFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "p")

	p, hasP := c.kw("p")
	if !hasP || p == 2 {
		s, err := singularValues(m)
		if err != nil {
			return nil, err
		}
		return s[0] / s[len(s)-1], nil
	}
	if p == -2 {
		s, err := singularValues(m)
		if err != nil {
			return nil, err
		}
		return s[len(s)-1] / s[0], nil
	}

	// For the remaining orders, cond(a) = norm(a, p) * norm(inv(a), p).
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("singular matrix")
	}
	na, err := matrixNorm(m, p)
	if err != nil {
		return nil, err
	}
	ni, err := matrixNorm(&inv, p)
	if err != nil {
		return nil, err
	}
	return na * ni, nil
}

func detFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if _, err := squareDense(m); err != nil {
		return nil, err
	}
	return mat.Det(m), nil
}

func eigFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if _, err := squareDense(m); err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenRight); !ok {
		return nil, fmt.Errorf("eigendecomposition did not converge")
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	return []any{values, &vectors}, nil
}

func eigvalsFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if _, err := squareDense(m); err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return nil, fmt.Errorf("eigendecomposition did not converge")
	}
	return eig.Values(nil), nil
}

func eighFn(c *CallContext) (any, error) {
	return symEig(c, true)
}

func eigvalshFn(c *CallContext) (any, error) {
	return symEig(c, false)
}

func symEig(c *CallContext, vectors bool) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	uplo := c.KwStr("UPLO", "L")
	warnIgnored(c, "UPLO")
	sym, err := symFromTriangle(m, uplo)
	if err != nil {
		return nil, err
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, vectors); !ok {
		return nil, fmt.Errorf("eigendecomposition did not converge")
	}
	values := es.Values(nil)
	if !vectors {
		return values, nil
	}
	var vec mat.Dense
	es.VectorsTo(&vec)
	return []any{values, &vec}, nil
}

func invFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if _, err := squareDense(m); err != nil {
		return nil, err
	}
	var out mat.Dense
	if err := out.Inverse(m); err != nil {
		return nil, fmt.Errorf("singular matrix")
	}
	return &out, nil
}

func lstsqFn(c *CallContext) (any, error) {
	a, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	b, err := c.Dense(1)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "rcond")

	ar, ac := a.Dims()
	br, _ := b.Dims()
	if ar != br {
		return nil, fmt.Errorf("incompatible dimensions")
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, fmt.Errorf("least-squares solve failed: %v", err)
	}

	s, err := singularValues(a)
	if err != nil {
		return nil, err
	}
	rcond := c.KwFloat("rcond", float64(max(ar, ac))*eps)
	rank := 0
	for _, v := range s {
		if v > rcond*s[0] {
			rank++
		}
	}

	// Residuals are only defined for full-rank overdetermined systems.
	var residuals []float64
	if ar > ac && rank == ac {
		var fitted mat.Dense
		fitted.Mul(a, &x)
		_, bc := b.Dims()
		residuals = make([]float64, bc)
		for j := 0; j < bc; j++ {
			acc := 0.0
			for i := 0; i < ar; i++ {
				d := b.At(i, j) - fitted.At(i, j)
				acc += d * d
			}
			residuals[j] = acc
		}
	}

	return []any{&x, residuals, rank, s}, nil
}

func matrixRankFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	s, err := singularValues(m)
	if err != nil {
		return nil, err
	}
	r, cols := m.Dims()
	tol := float64(max(r, cols)) * eps * s[0]
	rank := 0
	for _, v := range s {
		if v > tol {
			rank++
		}
	}
	return rank, nil
}

// matrixNorm computes a matrix norm for an order produced by the order
// coercer (int, ±Inf float, or a named order string).
func matrixNorm(m *mat.Dense, ord any) (float64, error) {
	rows, cols := m.Dims()
	switch o := ord.(type) {
	case nil:
		return mat.Norm(m, 2), nil // Frobenius
	case string:
		switch o {
		case "fro":
			return mat.Norm(m, 2), nil
		case "nuc":
			s, err := singularValues(m)
			if err != nil {
				return 0, err
			}
			acc := 0.0
			for _, v := range s {
				acc += v
			}
			return acc, nil
		default:
			return 0, fmt.Errorf("invalid norm order %q", o)
		}
	case float64:
		if math.IsInf(o, 1) {
			return mat.Norm(m, math.Inf(1)), nil
		}
		if math.IsInf(o, -1) {
			// Minimum absolute row sum.
			return extremeAbsSum(m, rows, cols, true, false), nil
		}
		return 0, fmt.Errorf("invalid norm order %v", o)
	case int:
		switch o {
		case 1:
			return mat.Norm(m, 1), nil
		case -1:
			return extremeAbsSum(m, rows, cols, false, false), nil
		case 2:
			s, err := singularValues(m)
			if err != nil {
				return 0, err
			}
			return s[0], nil
		case -2:
			s, err := singularValues(m)
			if err != nil {
				return 0, err
			}
			return s[len(s)-1], nil
		default:
			return 0, fmt.Errorf("invalid norm order %d for matrices", o)
		}
	default:
		return 0, fmt.Errorf("invalid norm order %v", ord)
	}
}

// extremeAbsSum returns the minimum absolute row sum (byRow) or column
// sum of m.
func extremeAbsSum(m *mat.Dense, rows, cols int, byRow, maximum bool) float64 {
	outer, inner := rows, cols
	if !byRow {
		outer, inner = cols, rows
	}
	best := math.NaN()
	for i := 0; i < outer; i++ {
		acc := 0.0
		for j := 0; j < inner; j++ {
			if byRow {
				acc += math.Abs(m.At(i, j))
			} else {
				acc += math.Abs(m.At(j, i))
			}
		}
		if math.IsNaN(best) || (maximum && acc > best) || (!maximum && acc < best) {
			best = acc
		}
	}
	return best
}

func vectorNorm(xs []float64, ord any) (float64, error) {
	switch o := ord.(type) {
	case nil:
		return l2Norm(xs), nil
	case float64:
		if math.IsInf(o, 1) {
			best := 0.0
			for _, v := range xs {
				if a := math.Abs(v); a > best {
					best = a
				}
			}
			return best, nil
		}
		if math.IsInf(o, -1) {
			best := math.Inf(1)
			for _, v := range xs {
				if a := math.Abs(v); a < best {
					best = a
				}
			}
			return best, nil
		}
		return 0, fmt.Errorf("invalid norm order %v", o)
	case int:
		if o == 0 {
			count := 0.0
			for _, v := range xs {
				if v != 0 {
					count++
				}
			}
			return count, nil
		}
		acc := 0.0
		for _, v := range xs {
			acc += math.Pow(math.Abs(v), float64(o))
		}
		return math.Pow(acc, 1/float64(o)), nil
	default:
		return 0, fmt.Errorf("invalid norm order %v", ord)
	}
}

func l2Norm(xs []float64) float64 {
	acc := 0.0
	for _, v := range xs {
		acc += v * v
	}
	return math.Sqrt(acc)
}

func normFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c, "ord", "axis", "keepdims")
	ord, _ := c.kw("ord")
	keep := c.KwBool("keepdims", false)
	rows, cols := m.Dims()

	if axis, hasAxis := c.axis(); hasAxis && axis >= 0 {
		return reduce(c, m, func(xs []float64) float64 {
			v, err := vectorNorm(xs, ord)
			if err != nil {
				return math.NaN()
			}
			return v
		})
	}

	var v float64
	if rows == 1 || cols == 1 {
		v, err = vectorNorm(flatten(m), ord)
	} else {
		v, err = matrixNorm(m, ord)
	}
	if err != nil {
		return nil, err
	}
	if keep {
		return mat.NewDense(1, 1, []float64{v}), nil
	}
	return v, nil
}

func pinvFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, fmt.Errorf("SVD did not converge")
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	rows, cols := m.Dims()
	tol := float64(max(rows, cols)) * eps * s[0]
	k := len(s)
	sinv := mat.NewDense(k, k, nil)
	for i, val := range s {
		if val > tol {
			sinv.Set(i, i, 1/val)
		}
	}

	var tmp, out mat.Dense
	tmp.Mul(&v, sinv)
	out.Mul(&tmp, u.T())
	return &out, nil
}

func qrFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	mode := c.KwStr("mode", "reduced")
	warnIgnored(c, "mode")

	rows, cols := m.Dims()
	if rows < cols {
		return nil, fmt.Errorf("qr requires rows >= columns")
	}
	var qr mat.QR
	qr.Factorize(m)
	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	switch mode {
	case "complete":
		return []any{&q, &r}, nil
	case "reduced":
		var qThin, rThin mat.Dense
		qThin.CloneFrom(q.Slice(0, rows, 0, cols))
		rThin.CloneFrom(r.Slice(0, cols, 0, cols))
		return []any{&qThin, &rThin}, nil
	case "r":
		var rThin mat.Dense
		rThin.CloneFrom(r.Slice(0, cols, 0, cols))
		return &rThin, nil
	default:
		return nil, fmt.Errorf("invalid qr mode %q", mode)
	}
}

func slogdetFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if _, err := squareDense(m); err != nil {
		return nil, err
	}
	logdet, sign := mat.LogDet(m)
	return []any{sign, logdet}, nil
}

func solveFn(c *CallContext) (any, error) {
	a, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	b, err := c.Dense(1)
	if err != nil {
		return nil, err
	}
	warnIgnored(c)
	if _, err := squareDense(a); err != nil {
		return nil, err
	}
	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, fmt.Errorf("singular matrix")
	}
	return &x, nil
}

func svdFn(c *CallContext) (any, error) {
	m, err := c.Dense(0)
	if err != nil {
		return nil, err
	}
	full := c.KwBool("full_matrices", true)
	computeUV := c.KwBool("compute_uv", true)
	warnIgnored(c, "full_matrices", "compute_uv", "hermitian")

	if !computeUV {
		return singularValues(m)
	}

	kind := mat.SVDThin
	if full {
		kind = mat.SVDFull
	}
	var svd mat.SVD
	if ok := svd.Factorize(m, kind); !ok {
		return nil, fmt.Errorf("SVD did not converge")
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var vh mat.Dense
	vh.CloneFrom(v.T())
	return []any{&u, s, &vh}, nil
}
