package vg

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
)

// TessellatePolygon fills a polygon.
//
// By default the polygon is fanned from its first point. The caller must
// supply a convex, non-self-intersecting outline; concave input does not
// fail but may fill incorrectly. With Triangulate set the outline is
// triangulated with a constrained Delaunay sweep instead, which handles
// simple concave polygons; if the triangulator rejects the outline the fan
// is used.
func TessellatePolygon(p Polygon, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	pts := dedupe(p.Points)
	if len(pts) < 3 {
		Logger().Debug("vg: degenerate polygon", "points", len(p.Points))
		return nil
	}
	m := ctx.Full()
	if p.Triangulate {
		tris, err := triangulate(pts)
		if err == nil {
			e := newEmitter(m, 3*len(tris))
			for _, t := range tris {
				e.tri(t[0], t[1], t[2])
			}
			return e.out
		}
		Logger().Debug("vg: triangulation failed, using fan", "err", err)
	}
	e := newEmitter(m, 3*(len(pts)-2))
	e.fan(pts[0], pts[1:])
	return e.out
}

// dedupe drops consecutive duplicate points and a closing point equal to
// the first.
func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// triangulate runs the poly2tri sweep over a simple polygon outline.
// poly2tri panics on input it cannot handle (collinear runs, self
// intersections); that panic is turned into an error.
func triangulate(pts []Point) (tris [][3]Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			tris, err = nil, fmt.Errorf("vg: triangulate: %v", r)
		}
	}()

	contour := make([]*poly2tri.Point, len(pts))
	for i, p := range pts {
		contour[i] = poly2tri.NewPoint(p.X, p.Y)
	}
	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		tris = append(tris, [3]Point{
			{X: tr.Points[0].X, Y: tr.Points[0].Y},
			{X: tr.Points[1].X, Y: tr.Points[1].Y},
			{X: tr.Points[2].X, Y: tr.Points[2].Y},
		})
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("vg: triangulate: no triangles for %d points", len(pts))
	}
	return tris, nil
}
