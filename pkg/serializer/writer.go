// Package serializer renders computed values as delimited text. Matrices
// print one row per line with comma-separated cells, vectors print as a
// single comma-separated line, and every line ends with the configured
// terminator so results can be chained back into another invocation.
package serializer

import (
	"fmt"
	"io"
	"strings"

	"github.com/numstack/numctl/pkg/config"
	"gonum.org/v1/gonum/mat"
)

// Writer renders values according to the runtime configuration.
type Writer struct {
	out io.Writer
	cfg *config.Config
}

// New returns a Writer bound to out.
func New(out io.Writer, cfg *config.Config) *Writer {
	return &Writer{out: out, cfg: cfg}
}

// Write renders a single computed value. A nil value renders nothing,
// and a tuple renders each element in order.
func (w *Writer) Write(v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		for _, elem := range x {
			if err := w.Write(elem); err != nil {
				return err
			}
		}
		return nil
	case *mat.Dense:
		return WriteMatrix(w.out, x, w.cfg.Format, ",", w.cfg.Newline)
	case mat.Matrix:
		return WriteMatrix(w.out, x, w.cfg.Format, ",", w.cfg.Newline)
	case *mat.CDense:
		return w.writeComplexMatrix(x)
	case []float64:
		return w.line(w.joinFloats(x))
	case []int:
		return w.line(joinInts(x))
	case []complex128:
		cells := make([]string, len(x))
		for i, c := range x {
			cells[i] = w.formatComplex(c)
		}
		return w.line(strings.Join(cells, ","))
	case float64:
		return w.line(fmt.Sprintf(w.cfg.Format, x))
	case int:
		return w.line(fmt.Sprintf("%d", x))
	case bool:
		if x {
			return w.line("True")
		}
		return w.line("False")
	case complex128:
		return w.line(w.formatComplex(x))
	case string:
		return w.line(x)
	default:
		return fmt.Errorf("cannot serialize %T", v)
	}
}

func (w *Writer) line(s string) error {
	_, err := fmt.Fprintf(w.out, "%s%s", s, w.cfg.Newline)
	return err
}

func (w *Writer) joinFloats(xs []float64) string {
	cells := make([]string, len(xs))
	for i, v := range xs {
		cells[i] = fmt.Sprintf(w.cfg.Format, v)
	}
	return strings.Join(cells, ",")
}

func joinInts(xs []int) string {
	cells := make([]string, len(xs))
	for i, v := range xs {
		cells[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(cells, ",")
}

// formatComplex renders a complex value as re+imi, dropping a zero
// imaginary part.
func (w *Writer) formatComplex(c complex128) string {
	re := fmt.Sprintf(w.cfg.Format, real(c))
	if imag(c) == 0 {
		return re
	}
	im := fmt.Sprintf(w.cfg.Format, imag(c))
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return fmt.Sprintf("%s%si", re, im)
}

func (w *Writer) writeComplexMatrix(m *mat.CDense) error {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		cells := make([]string, cols)
		for j := 0; j < cols; j++ {
			cells[j] = w.formatComplex(m.At(i, j))
		}
		if err := w.line(strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

// WriteMatrix writes m row by row with the given cell format, cell
// delimiter, and row terminator. Every row, the last included, ends with
// the terminator.
func WriteMatrix(out io.Writer, m mat.Matrix, numFmt, delim, newline string) error {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		cells := make([]string, cols)
		for j := 0; j < cols; j++ {
			cells[j] = fmt.Sprintf(numFmt, m.At(i, j))
		}
		if _, err := fmt.Fprintf(out, "%s%s", strings.Join(cells, delim), newline); err != nil {
			return err
		}
	}
	return nil
}
