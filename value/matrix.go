package value

import (
	"errors"

	"github.com/DinaGala/computor-v2/rational"
)

// errNoPivot is the underlying cause wrapped into the DomainError Inverse
// raises when Gauss-Jordan elimination finds no nonzero entry to pivot on.
var errNoPivot = errors.New("no nonzero entry at or below the diagonal in this column")

// Matrix is a rectangular grid of scalar cells (Rational or Complex),
// rows x cols, stored row-major. Every row has the same length (spec §3
// invariant), checked at every construction site rather than re-validated
// on every read, following the teacher's Matrix (shape + flat data vector).
type Matrix struct {
	Rows, Cols int
	Data       []Value // len == Rows*Cols, row-major
}

func (Matrix) isValue() {}

// NewMatrix builds a Matrix from row-major cell data. Panics with a
// ShapeError if len(data) != rows*cols.
func NewMatrix(rows, cols int, data []Value) Matrix {
	if rows < 1 || cols < 1 {
		panicShape("matrix dimensions must be positive, got %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		panicShape("matrix data length %d does not match %dx%d", len(data), rows, cols)
	}
	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// NewMatrixFromRows builds a Matrix from a list of rows, each a list of
// cells. Panics with a ShapeError if rows differ in length.
func NewMatrixFromRows(rows [][]Value) Matrix {
	if len(rows) == 0 {
		panicShape("matrix must have at least one row")
	}
	cols := len(rows[0])
	if cols == 0 {
		panicShape("matrix rows must be non-empty")
	}
	data := make([]Value, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panicShape("matrix row %d has length %d, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Matrix{Rows: len(rows), Cols: cols, Data: data}
}

// At returns the cell at (row, col), zero-based.
func (m Matrix) At(row, col int) Value {
	return m.Data[row*m.Cols+col]
}

// identity returns the n x n identity matrix over the Rational field.
func identity(n int) Matrix {
	data := make([]Value, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = One
			} else {
				data[i*n+j] = Zero
			}
		}
	}
	return Matrix{Rows: n, Cols: n, Data: data}
}

func (m Matrix) sameDims(n Matrix) bool {
	return m.Rows == n.Rows && m.Cols == n.Cols
}

// addM and subM require identical dimensions (spec §4.3).
func (m Matrix) addM(n Matrix) Matrix {
	if !m.sameDims(n) {
		panicShape("matrix addition requires matching dimensions, got %dx%d and %dx%d", m.Rows, m.Cols, n.Rows, n.Cols)
	}
	data := make([]Value, len(m.Data))
	for i := range data {
		data[i] = Add(m.Data[i], n.Data[i])
	}
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

func (m Matrix) subM(n Matrix) Matrix {
	if !m.sameDims(n) {
		panicShape("matrix subtraction requires matching dimensions, got %dx%d and %dx%d", m.Rows, m.Cols, n.Rows, n.Cols)
	}
	data := make([]Value, len(m.Data))
	for i := range data {
		data[i] = Sub(m.Data[i], n.Data[i])
	}
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// mulM multiplies m x n, requiring m.Cols == n.Rows (spec §4.3).
func (m Matrix) mulM(n Matrix) Matrix {
	if m.Cols != n.Rows {
		panicShape("matrix multiplication requires inner dimensions to match, got %dx%d and %dx%d", m.Rows, m.Cols, n.Rows, n.Cols)
	}
	data := make([]Value, m.Rows*n.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < n.Cols; j++ {
			sum := Value(Zero)
			for k := 0; k < m.Cols; k++ {
				sum = Add(sum, Mul(m.At(i, k), n.At(k, j)))
			}
			data[i*n.Cols+j] = sum
		}
	}
	return Matrix{Rows: m.Rows, Cols: n.Cols, Data: data}
}

// scale broadcasts a scalar over every cell (scalar * M and M * scalar).
func (m Matrix) scale(s Value) Matrix {
	data := make([]Value, len(m.Data))
	for i, cell := range m.Data {
		data[i] = Mul(cell, s)
	}
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// divScalar divides every cell by a scalar.
func (m Matrix) divScalar(s Value) Matrix {
	data := make([]Value, len(m.Data))
	for i, cell := range m.Data {
		data[i] = Div(cell, s)
	}
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// powInt raises a square matrix to an integer power (spec §4.3):
// M^0 = I, M^k (k>0) by repeated squaring, M^-1 = inverse,
// M^k (k<0) = (M^-1)^|k|.
func (m Matrix) powInt(n int64) Matrix {
	if m.Rows != m.Cols {
		panicShape("matrix power requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	if n == 0 {
		return identity(m.Rows)
	}
	if n < 0 {
		return m.Inverse().powInt(-n)
	}
	result := identity(m.Rows)
	base := m
	for n > 0 {
		if n&1 == 1 {
			result = result.mulM(base)
		}
		base = base.mulM(base)
		n >>= 1
	}
	return result
}

// Inverse computes the matrix inverse via exact Gauss-Jordan elimination
// on the augmented [M | I], choosing the first nonzero entry at or below
// the diagonal as pivot, swapping rows as needed, then normalizing and
// eliminating above and below (spec §4.3). Panics with a ShapeError if m
// is not square, or a DomainError ("singular") if no pivot exists.
func (m Matrix) Inverse() Matrix {
	if m.Rows != m.Cols {
		panicShape("matrix inverse requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	// aug[i] is row i of [M | I], length 2n.
	aug := make([][]Value, n)
	for i := 0; i < n; i++ {
		row := make([]Value, 2*n)
		for j := 0; j < n; j++ {
			row[j] = m.At(i, j)
		}
		for j := 0; j < n; j++ {
			if i == j {
				row[n+j] = One
			} else {
				row[n+j] = Zero
			}
		}
		aug[i] = row
	}
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !IsZero(aug[row][col]) {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			panicDomainWrap(errNoPivot, "singular matrix")
		}
		if pivot != col {
			aug[col], aug[pivot] = aug[pivot], aug[col]
		}
		pivotVal := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] = Div(aug[col][j], pivotVal)
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := aug[row][col]
			if IsZero(factor) {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[row][j] = Sub(aug[row][j], Mul(factor, aug[col][j]))
			}
		}
	}
	data := make([]Value, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = aug[i][n+j]
		}
	}
	return Matrix{Rows: n, Cols: n, Data: data}
}

// magnitudeSquaredScalar returns |v|^2 for a scalar cell, used by Frobenius
// norm and abs.
func magnitudeSquaredScalar(v Value) rational.Rational {
	switch t := v.(type) {
	case Rational:
		return t.Rational.Mul(t.Rational)
	case Complex:
		return t.magnitudeSquared()
	}
	panicType("cannot take magnitude of %T", v)
	return rational.Zero
}
