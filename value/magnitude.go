package value

import "github.com/DinaGala/computor-v2/rational"

// MagnitudeSquared returns |v|^2 for a scalar cell (Rational or Complex),
// used by the abs and norm built-ins to avoid taking an unnecessary square
// root when the caller only needs the squared magnitude.
func MagnitudeSquared(v Value) rational.Rational {
	return magnitudeSquaredScalar(v)
}

// FrobeniusSquared returns the sum of |cell|^2 over every cell of a
// matrix or vector-shaped matrix, for the norm built-in (spec §4.5).
func FrobeniusSquared(m Matrix) rational.Rational {
	sum := rational.Zero
	for _, cell := range m.Data {
		sum = sum.Add(magnitudeSquaredScalar(cell))
	}
	return sum
}

// IsVectorShape reports whether m is 1xn or nx1. The norm built-in does
// not branch on it: vectors and general matrices share the Frobenius path.
func IsVectorShape(m Matrix) bool {
	return m.Rows == 1 || m.Cols == 1
}
