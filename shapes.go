package vg

import "math"

// LineCap is the shape of the ends of a line.
type LineCap uint8

const (
	// CapButt ends the line flush with its endpoints.
	CapButt LineCap = iota
	// CapSquare extends each end by half the width.
	CapSquare
	// CapRound adds a half disc at each end.
	CapRound
)

// CornerStyle is the shape of the corners of a rectangle with a radius.
type CornerStyle uint8

const (
	// CornerRound draws circular arcs.
	CornerRound CornerStyle = iota
	// CornerBevel cuts each corner with a straight edge.
	CornerBevel
)

// Line is a straight stroke from P0 to P1. Width is in model units and is
// transformed with the geometry, so a non-uniform scale gives a
// non-uniform stroke.
type Line struct {
	P0, P1 Point
	Width  float64
	Cap    LineCap
}

// Rectangle is an axis-aligned rectangle in model space, optionally with
// rounded or bevelled corners. CornerRadius is clamped to half the shorter
// side.
type Rectangle struct {
	Rect         Rect
	CornerRadius float64
	Corner       CornerStyle
}

// radius returns the clamped corner radius.
func (r Rectangle) radius() float64 {
	limit := math.Min(r.Rect.W, r.Rect.H) / 2
	if !(r.CornerRadius > 0) {
		return 0
	}
	return math.Min(r.CornerRadius, limit)
}

// Polygon is an ordered, implicitly closed sequence of points.
//
// By default the polygon is filled as a fan from its first point, which is
// only correct for convex polygons; concave input is not rejected but may
// fill incorrectly. Set Triangulate for simple concave polygons.
type Polygon struct {
	Points      []Point
	Triangulate bool
}

// Arc restricts an ellipse to the angles from Start to End, in radians.
// Angles are measured from +X towards +Y.
type Arc struct {
	Start, End float64
}

// Sweep returns End-Start.
func (a Arc) Sweep() float64 {
	return a.End - a.Start
}

// Ellipse is an axis-aligned ellipse, or an elliptical arc when Arc is set.
type Ellipse struct {
	Center Point
	RX, RY float64
	Arc    *Arc
}

// Circle returns a full circle.
func Circle(center Point, radius float64) Ellipse {
	return Ellipse{Center: center, RX: radius, RY: radius}
}

// EllipseInRect returns the ellipse inscribed in r.
func EllipseInRect(r Rect) Ellipse {
	return Ellipse{Center: r.Center(), RX: r.W / 2, RY: r.H / 2}
}

// sweep returns the start angle and the angular range of the ellipse.
func (e Ellipse) sweep() (start, sweep float64, full bool) {
	if e.Arc == nil {
		return 0, 2 * math.Pi, true
	}
	s := e.Arc.Sweep()
	if math.Abs(s) >= 2*math.Pi {
		return e.Arc.Start, 2 * math.Pi, true
	}
	return e.Arc.Start, s, false
}

// at returns the point at angle theta.
func (e Ellipse) at(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{X: e.Center.X + e.RX*cos, Y: e.Center.Y + e.RY*sin}
}

// Border turns a filled rectangle or ellipse into its outline, a ribbon of
// the given width lying inside the shape.
type Border struct {
	Width float64
}

// ImageQuad maps the Src sub-rectangle of a texture, in texels, onto the
// model-space rectangle Dst. An empty Src selects the whole texture.
type ImageQuad struct {
	Src Rect
	Dst Rect
}

// Glyph is a pre-rasterised glyph: Src is its cell in the atlas texture, in
// texels, and Dst is where it lands in model space.
type Glyph struct {
	Src Rect
	Dst Rect
}
