package vg

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners returns the rectangle spanned by two opposite corners.
func RectFromCorners(p0, p1 Point) Rect {
	x0, x1 := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	y0, y1 := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// SquareRect returns a square with its top-left corner at pos.
func SquareRect(pos Point, side float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: side, H: side}
}

// CircleRect returns the rectangle circumscribing a circle.
func CircleRect(center Point, radius float64) Rect {
	return Rect{
		X: center.X - radius,
		Y: center.Y - radius,
		W: 2 * radius,
		H: 2 * radius,
	}
}

// Left returns the left edge x-coordinate.
func (r Rect) Left() float64 { return r.X }

// Top returns the top edge y-coordinate.
func (r Rect) Top() float64 { return r.Y }

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the width and height.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Center returns the centre point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the corners clockwise on screen starting top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// Contains reports whether p lies strictly inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return r.X < p.X && p.X < r.Right() && r.Y < p.Y && p.Y < r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return RectFromCorners(
		Pt(math.Min(r.X, other.X), math.Min(r.Y, other.Y)),
		Pt(math.Max(r.Right(), other.Right()), math.Max(r.Bottom(), other.Bottom())),
	)
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Margin returns the rectangle inset by m on every side. A dimension that
// would become negative collapses to zero around the centre line.
func (r Rect) Margin(m float64) Rect {
	x, w := r.X+m, r.W-2*m
	if w < 0 {
		x, w = r.X+r.W/2, 0
	}
	y, h := r.Y+m, r.H-2*m
	if h < 0 {
		y, h = r.Y+r.H/2, 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered returns a rectangle with four times the area of r, centred on
// r's top-left corner. Handy for describing a circle by centre and radius.
func (r Rect) Centered() Rect {
	return Rect{X: r.X - r.W, Y: r.Y - r.H, W: 2 * r.W, H: 2 * r.H}
}

// Relative slides the rectangle by v multiples of its own size.
func (r Rect) Relative(v Point) Rect {
	return Rect{X: r.X + r.W*v.X, Y: r.Y + r.H*v.Y, W: r.W, H: r.H}
}

// Scaled scales the size by v, keeping the top-left corner.
func (r Rect) Scaled(v Point) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W * v.X, H: r.H * v.Y}
}
