package vg

import (
	"errors"
	"math"
)

// SingularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const SingularEpsilon = 1e-12

// ErrSingular is returned by Matrix.Invert when the matrix has no inverse.
var ErrSingular = errors.New("vg: singular matrix")

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Points are column vectors, so m.Multiply(n) applies n first and m second.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
// With Y pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotateDeg creates a rotation matrix from an angle in degrees.
func RotateDeg(deg float64) Matrix {
	return Rotate(deg * math.Pi / 180)
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// FlipH mirrors the X axis.
func FlipH() Matrix {
	return Scale(-1, 1)
}

// FlipV mirrors the Y axis.
func FlipV() Matrix {
	return Scale(1, -1)
}

// Compose returns the transform that applies a first and then b.
// It is b.Multiply(a).
func Compose(a, b Matrix) Matrix {
	return b.Multiply(a)
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Then returns the transform that applies m first and then next.
func (m Matrix) Then(next Matrix) Matrix {
	return Compose(m, next)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// Returns ErrSingular if the determinant is below SingularEpsilon.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < SingularEpsilon || math.IsNaN(det) {
		return Matrix{}, ErrSingular
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// MaxScaleFactor returns the largest singular value of the linear part,
// the longest a unit vector can become under m.
func (m Matrix) MaxScaleFactor() float64 {
	s, _ := m.singularValues()
	return s
}

// MinScaleFactor returns the smallest singular value of the linear part.
func (m Matrix) MinScaleFactor() float64 {
	_, s := m.singularValues()
	return s
}

// singularValues computes both singular values of the 2x2 linear part in
// closed form.
func (m Matrix) singularValues() (smax, smin float64) {
	e := (m.A + m.E) / 2
	f := (m.A - m.E) / 2
	g := (m.D + m.B) / 2
	h := (m.D - m.B) / 2
	q := math.Hypot(e, h)
	r := math.Hypot(f, g)
	return q + r, math.Abs(q - r)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// ApproxEqual reports whether every coefficient of m is within eps of n.
func (m Matrix) ApproxEqual(n Matrix, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps && math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps && math.Abs(m.D-n.D) <= eps &&
		math.Abs(m.E-n.E) <= eps && math.Abs(m.F-n.F) <= eps
}
