package vg

import "math"

// Vertex is a device-space position with a texture coordinate.
// U and V are zero for untextured geometry.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Pos returns the position as a Point.
func (v Vertex) Pos() Point {
	return Point{X: float64(v.X), Y: float64(v.Y)}
}

// TriangleCount returns the number of whole triangles in a triangle list.
func TriangleCount(vs []Vertex) int {
	return len(vs) / 3
}

// Bounds returns the device-space bounding box of the vertices.
// Returns an empty Rect for an empty list.
func Bounds(vs []Vertex) Rect {
	if len(vs) == 0 {
		return Rect{}
	}
	minX, minY := float64(vs[0].X), float64(vs[0].Y)
	maxX, maxY := minX, minY
	for _, v := range vs[1:] {
		x, y := float64(v.X), float64(v.Y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// emitter appends transformed triangles to a vertex list.
type emitter struct {
	m   Matrix
	out []Vertex
}

func newEmitter(m Matrix, capacity int) *emitter {
	return &emitter{m: m, out: make([]Vertex, 0, capacity)}
}

func (e *emitter) vertex(p Point, uv Point) Vertex {
	q := e.m.TransformPoint(p)
	return Vertex{X: float32(q.X), Y: float32(q.Y), U: float32(uv.X), V: float32(uv.Y)}
}

// tri appends an untextured triangle given in model space.
func (e *emitter) tri(a, b, c Point) {
	e.out = append(e.out, e.vertex(a, Point{}), e.vertex(b, Point{}), e.vertex(c, Point{}))
}

// quad appends a-b-c-d as the triangles a,b,c and a,c,d.
func (e *emitter) quad(a, b, c, d Point) {
	e.tri(a, b, c)
	e.tri(a, c, d)
}

// texQuad appends a textured quad spanning dst with texture coordinates
// spanning uv.
func (e *emitter) texQuad(dst, uv Rect) {
	p := dst.Corners()
	t := uv.Corners()
	e.out = append(e.out,
		e.vertex(p[0], t[0]), e.vertex(p[1], t[1]), e.vertex(p[2], t[2]),
		e.vertex(p[0], t[0]), e.vertex(p[2], t[2]), e.vertex(p[3], t[3]),
	)
}

// fan appends the triangles center, pts[i], pts[i+1].
func (e *emitter) fan(center Point, pts []Point) {
	for i := 0; i+1 < len(pts); i++ {
		e.tri(center, pts[i], pts[i+1])
	}
}

// ribbon appends the strip between two equally long point runs.
func (e *emitter) ribbon(outer, inner []Point) {
	for i := 0; i+1 < len(outer) && i+1 < len(inner); i++ {
		e.quad(outer[i], outer[i+1], inner[i+1], inner[i])
	}
}
