package vg

import "math"

// EllipseSegments returns the number of edges used to approximate e under
// ctx. The count is chosen from the ellipse's apparent size after the full
// transform, so zooming in yields more segments.
func EllipseSegments(e Ellipse, ctx Context) int {
	_, sweep, _ := e.sweep()
	radius := math.Max(math.Abs(e.RX), math.Abs(e.RY))
	return ctx.Resolution.Segments(radius, ctx.Full().MaxScaleFactor(), sweep)
}

// ellipseOutline returns segs+1 points along the ellipse from its start
// angle. For a full ellipse the last point equals the first.
func ellipseOutline(e Ellipse, segs int) []Point {
	start, sweep, _ := e.sweep()
	pts := make([]Point, segs+1)
	for i := 0; i < segs; i++ {
		pts[i] = e.at(start + sweep*float64(i)/float64(segs))
	}
	pts[segs] = e.at(start + sweep)
	return pts
}

// TessellateEllipse fills an ellipse, or the pie slice of an arc, as a fan
// of triangles around the centre.
func TessellateEllipse(e Ellipse, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	if !(e.RX > 0 && e.RY > 0) {
		Logger().Debug("vg: degenerate ellipse", "rx", e.RX, "ry", e.RY)
		return nil
	}
	_, sweep, full := e.sweep()
	if !full && sweep == 0 {
		return nil
	}
	segs := EllipseSegments(e, ctx)
	pts := ellipseOutline(e, segs)
	if full {
		pts[segs] = pts[0]
	}
	em := newEmitter(ctx.Full(), 3*segs)
	em.fan(e.Center, pts)
	return em.out
}

// TessellateEllipseBorder strokes the inside edge of an ellipse or arc with
// a ribbon of the border width. The inner radii are floored at zero.
func TessellateEllipseBorder(e Ellipse, b Border, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	if !(e.RX > 0 && e.RY > 0) || !(b.Width > 0) {
		Logger().Debug("vg: degenerate ellipse border", "rx", e.RX, "ry", e.RY, "border", b.Width)
		return nil
	}
	_, sweep, full := e.sweep()
	if !full && sweep == 0 {
		return nil
	}
	inner := e
	inner.RX = math.Max(e.RX-b.Width, 0)
	inner.RY = math.Max(e.RY-b.Width, 0)

	segs := EllipseSegments(e, ctx)
	outerPts := ellipseOutline(e, segs)
	innerPts := ellipseOutline(inner, segs)
	if full {
		outerPts[segs] = outerPts[0]
		innerPts[segs] = innerPts[0]
	}
	em := newEmitter(ctx.Full(), 6*segs)
	em.ribbon(outerPts, innerPts)
	return em.out
}
