package primitives

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Matrix is a row-major dense two-dimensional array parameterized by
// element type, with 1-based range-checked element access, matching the
// original's matrix_base (cqasm-primitives.hpp/cpp).
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// NewMatrix allocates a rows x cols matrix with zero-valued elements.
func NewMatrix[T any](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("matrix dimensions must be non-negative")
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// NewMatrixFromRows builds a matrix from row-major nested slices. All rows
// must have the same length.
func NewMatrixFromRows[T any](rowsData [][]T) (*Matrix[T], error) {
	if len(rowsData) == 0 {
		return nil, errors.New("matrix must have at least one row")
	}
	cols := len(rowsData[0])
	if cols == 0 {
		return nil, errors.New("matrix rows must have at least one column")
	}
	m := NewMatrix[T](len(rowsData), cols)
	for r, row := range rowsData {
		if len(row) != cols {
			return nil, errors.Errorf("row %d has %d columns, expected %d", r+1, len(row), cols)
		}
		for c, v := range row {
			m.Set(r+1, c+1, v)
		}
	}
	return m, nil
}

// NewMatrixFlat builds a matrix of the given dimensions from a row-major
// flat slice of exactly rows*cols elements.
func NewMatrixFlat[T any](rows, cols int, flat []T) (*Matrix[T], error) {
	if len(flat) != rows*cols {
		return nil, errors.Errorf("expected %d elements for a %dx%d matrix, got %d", rows*cols, rows, cols, len(flat))
	}
	m := NewMatrix[T](rows, cols)
	copy(m.data, flat)
	return m, nil
}

// NumRows returns the number of rows.
func (m *Matrix[T]) NumRows() int { return m.rows }

// NumCols returns the number of columns.
func (m *Matrix[T]) NumCols() int { return m.cols }

// At returns the element at 1-based (row, col), panicking on an
// out-of-range index as the original's range-checked accessor does.
func (m *Matrix[T]) At(row, col int) T {
	m.checkBounds(row, col)
	return m.data[(row-1)*m.cols+(col-1)]
}

// Set assigns the element at 1-based (row, col).
func (m *Matrix[T]) Set(row, col int, v T) {
	m.checkBounds(row, col)
	m.data[(row-1)*m.cols+(col-1)] = v
}

func (m *Matrix[T]) checkBounds(row, col int) {
	if row < 1 || row > m.rows || col < 1 || col > m.cols {
		panic(fmt.Sprintf("matrix index (%d,%d) out of range for %dx%d matrix", row, col, m.rows, m.cols))
	}
}

// Flat returns the row-major backing slice. Callers must not retain a
// reference past mutation of m via Set.
func (m *Matrix[T]) Flat() []T {
	return m.data
}

// Equal reports dimension-then-content structural equality using eq to
// compare elements.
func (m *Matrix[T]) Equal(o *Matrix[T], eq func(a, b T) bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !eq(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// String renders the matrix in the same doubled-bracket, semicolon-separated
// row form as a matrix literal, e.g. "[[1,0; 0,1]]".
func (m *Matrix[T]) String() string {
	rows := make([]string, m.rows)
	for r := 0; r < m.rows; r++ {
		cols := make([]string, m.cols)
		for c := 0; c < m.cols; c++ {
			cols[c] = fmt.Sprint(m.data[r*m.cols+c])
		}
		rows[r] = strings.Join(cols, ",")
	}
	return "[[" + strings.Join(rows, "; ") + "]]"
}

// MapMatrix builds a new matrix of the same shape by applying f to every element,
// used by the promotion engine to widen a real matrix to a complex one.
func MapMatrix[A, B any](m *Matrix[A], f func(A) B) *Matrix[B] {
	out := NewMatrix[B](m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}
