package surface

import "math"

// Matrix is a 2D affine transform in DOMMatrix layout:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// so x' = A*x + C*y + E and y' = B*x + D*y + F.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix{A: 1, D: 1}

// Multiply returns m * n (n is applied first).
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// TranslateSelf post-multiplies m by a translation and returns the result.
func (m Matrix) TranslateSelf(tx, ty float64) Matrix {
	return m.Multiply(Matrix{A: 1, D: 1, E: tx, F: ty})
}

// ScaleSelf post-multiplies m by a scale and returns the result.
func (m Matrix) ScaleSelf(sx, sy float64) Matrix {
	return m.Multiply(Matrix{A: sx, D: sy})
}

// RotateSelf post-multiplies m by a rotation of angle radians.
func (m Matrix) RotateSelf(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return m.Multiply(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// TransformPoint maps (x, y) through m.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse of m. A singular matrix inverts to Identity.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	inv := 1.0 / det
	a := m.D * inv
	b := -m.B * inv
	c := -m.C * inv
	d := m.A * inv
	return Matrix{
		A: a, B: b, C: c, D: d,
		E: -(a*m.E + c*m.F),
		F: -(b*m.E + d*m.F),
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// ScaleFactor returns the geometric mean of the axis scales, the factor a
// unit length is stretched by on average.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
