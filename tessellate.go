package vg

import "math"

// All tessellators are pure functions of their inputs: they read the
// Context's full transform, resolution policy and scissor, and return a new
// device-space triangle list. Degenerate shapes and culled draw states
// produce an empty list, never an error.

// arcPoints returns n+1 points on the circle of the given radius around c,
// from angle start sweeping by sweep.
func arcPoints(c Point, radius, start, sweep float64, n int) []Point {
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		theta := start + sweep*float64(i)/float64(n)
		sin, cos := math.Sincos(theta)
		pts[i] = Point{X: c.X + radius*cos, Y: c.Y + radius*sin}
	}
	return pts
}

// TessellateLine extrudes a line into a quad of its width, perpendicular
// to its direction in model space, plus caps.
func TessellateLine(l Line, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	d := l.P1.Sub(l.P0)
	length := d.Length()
	if length == 0 || !(l.Width > 0) {
		Logger().Debug("vg: degenerate line", "p0", l.P0, "p1", l.P1, "width", l.Width)
		return nil
	}
	hw := l.Width / 2
	dir := d.Mul(1 / length)
	n := dir.Perp().Mul(hw)

	p0, p1 := l.P0, l.P1
	if l.Cap == CapSquare {
		p0 = p0.Sub(dir.Mul(hw))
		p1 = p1.Add(dir.Mul(hw))
	}

	m := ctx.Full()
	e := newEmitter(m, 6)
	e.quad(p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n))

	if l.Cap == CapRound {
		segs := ctx.Resolution.Segments(hw, m.MaxScaleFactor(), math.Pi)
		angle := math.Atan2(n.Y, n.X)
		// The cap at P1 sweeps from +n through +dir to -n, the cap at P0
		// from -n through -dir to +n.
		e.fan(l.P1, arcPoints(l.P1, hw, angle, -math.Pi, segs))
		e.fan(l.P0, arcPoints(l.P0, hw, angle, math.Pi, segs))
	}
	return e.out
}

// TessellateRectangle fills a rectangle. Without a corner radius this is
// exactly two triangles: (x,y),(x+w,y),(x+w,y+h) and (x,y),(x+w,y+h),(x,y+h).
func TessellateRectangle(r Rectangle, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	rect := r.Rect
	if rect.IsEmpty() {
		Logger().Debug("vg: degenerate rectangle", "rect", rect)
		return nil
	}
	m := ctx.Full()
	radius := r.radius()
	if radius == 0 {
		e := newEmitter(m, 6)
		c := rect.Corners()
		e.quad(c[0], c[1], c[2], c[3])
		return e.out
	}
	if r.Corner == CornerBevel {
		outline := bevelOutline(rect, radius)
		e := newEmitter(m, 3*(len(outline)-2))
		e.fan(outline[0], outline[1:])
		return e.out
	}
	return roundedRectFill(rect, radius, ctx.Resolution.Segments(radius, m.MaxScaleFactor(), math.Pi/2), m)
}

// cornerCenters returns the inset corner centres clockwise from top-left.
func cornerCenters(r Rect, radius float64) [4]Point {
	return [4]Point{
		{X: r.X + radius, Y: r.Y + radius},
		{X: r.Right() - radius, Y: r.Y + radius},
		{X: r.Right() - radius, Y: r.Bottom() - radius},
		{X: r.X + radius, Y: r.Bottom() - radius},
	}
}

// cornerStart is the start angle of each corner arc, clockwise from
// top-left. Each arc sweeps a quarter turn.
var cornerStart = [4]float64{math.Pi, 3 * math.Pi / 2, 0, math.Pi / 2}

// roundedRectFill tiles a rounded rectangle without overlap: a sector fan
// per corner around its inset centre, the inner rectangle between the
// centres and the four edge strips.
func roundedRectFill(r Rect, radius float64, segs int, m Matrix) []Vertex {
	centers := cornerCenters(r, radius)
	e := newEmitter(m, 3*(4*segs+10))

	arcs := [4][]Point{}
	for i, c := range centers {
		arcs[i] = arcPoints(c, radius, cornerStart[i], math.Pi/2, segs)
		e.fan(c, arcs[i])
	}

	tl, tr, br, bl := centers[0], centers[1], centers[2], centers[3]
	// Inner rectangle and edge strips; zero-sized pieces are skipped.
	if tr.X > tl.X && bl.Y > tl.Y {
		e.quad(tl, tr, br, bl)
	}
	if tr.X > tl.X {
		e.quad(arcs[0][segs], arcs[1][0], tr, tl) // top
		e.quad(bl, br, arcs[2][segs], arcs[3][0]) // bottom
	}
	if bl.Y > tl.Y {
		e.quad(tr, arcs[1][segs], arcs[2][0], br) // right
		e.quad(arcs[0][0], tl, bl, arcs[3][segs]) // left
	}
	return e.out
}

// bevelOutline returns the octagon of a rectangle with cut corners,
// clockwise, two points per corner starting at the top-left one.
func bevelOutline(r Rect, cut float64) []Point {
	return []Point{
		{X: r.X, Y: r.Y + cut},
		{X: r.X + cut, Y: r.Y},
		{X: r.Right() - cut, Y: r.Y},
		{X: r.Right(), Y: r.Y + cut},
		{X: r.Right(), Y: r.Bottom() - cut},
		{X: r.Right() - cut, Y: r.Bottom()},
		{X: r.X + cut, Y: r.Bottom()},
		{X: r.X, Y: r.Bottom() - cut},
	}
}

// rectOutline returns the closed outline of a rectangle with the given
// corner style and radius, clockwise from the top-left corner, with segs
// segments per rounded corner. The first point is repeated at the end.
func rectOutline(r Rect, radius float64, corner CornerStyle, segs int) []Point {
	var pts []Point
	switch {
	case radius <= 0:
		c := r.Corners()
		pts = c[:]
	case corner == CornerBevel:
		pts = bevelOutline(r, radius)
	default:
		for i, c := range cornerCenters(r, radius) {
			pts = append(pts, arcPoints(c, radius, cornerStart[i], math.Pi/2, segs)...)
		}
	}
	return append(pts, pts[0])
}

// TessellateRectangleBorder strokes the inside edge of a rectangle with a
// ribbon of the border width. A border wider than half the shorter side
// fills the rectangle.
func TessellateRectangleBorder(r Rectangle, b Border, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	if r.Rect.IsEmpty() || !(b.Width > 0) {
		Logger().Debug("vg: degenerate rectangle border", "rect", r.Rect, "border", b.Width)
		return nil
	}
	inner := r.Rect.Margin(b.Width)
	if inner.IsEmpty() {
		return TessellateRectangle(r, ctx)
	}
	m := ctx.Full()
	radius := r.radius()
	segs := 1
	if radius > 0 {
		segs = ctx.Resolution.Segments(radius, m.MaxScaleFactor(), math.Pi/2)
	}
	innerRadius := math.Max(radius-b.Width, 0)
	outerPts := rectOutline(r.Rect, radius, r.Corner, segs)
	innerPts := rectOutline(inner, innerRadius, r.Corner, segs)
	if len(innerPts) != len(outerPts) {
		// The inner corners degenerated to sharp ones; place every arc
		// point of a corner on that sharp inner corner.
		innerPts = expandCorners(inner, len(outerPts)-1)
	}
	e := newEmitter(m, 6*(len(outerPts)-1))
	e.ribbon(outerPts, innerPts)
	return e.out
}

// expandCorners spreads the four corners of r over n outline slots, a
// quarter of the slots per corner, closing the run with the first corner.
func expandCorners(r Rect, n int) []Point {
	c := r.Corners()
	pts := make([]Point, 0, n+1)
	per := n / 4
	for i := 0; i < 4; i++ {
		for j := 0; j < per; j++ {
			pts = append(pts, c[i])
		}
	}
	for len(pts) < n {
		pts = append(pts, c[3])
	}
	return append(pts, pts[0])
}
