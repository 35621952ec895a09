package software

import (
	"image"
	"math"

	"github.com/gogpu/vg"
)

// coverage rasterises a triangle list into an anti-aliased mask covering
// area, the part of the target the triangles and the scissor share.
// Triangles are wound consistently first so that shared edges add up
// instead of cancelling.
func (b *Backend) coverage(vs []vg.Vertex, ds vg.DrawState) (*image.Alpha, image.Rectangle, bool) {
	if ds.Culled() || len(vs) < 3 {
		return nil, image.Rectangle{}, false
	}
	clip := b.clipBounds(ds)
	area := vertexBounds(vs, clip)
	if area.Empty() {
		return nil, image.Rectangle{}, false
	}

	b.raster.Reset(area.Dx(), area.Dy())
	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	drawn := false
	for i := 0; i+2 < len(vs); i += 3 {
		p0, p1, p2 := vs[i], vs[i+1], vs[i+2]
		if !finite(p0) || !finite(p1) || !finite(p2) {
			continue
		}
		cross := (p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X)
		if cross == 0 {
			continue
		}
		if cross < 0 {
			p1, p2 = p2, p1
		}
		b.raster.MoveTo(p0.X-ox, p0.Y-oy)
		b.raster.LineTo(p1.X-ox, p1.Y-oy)
		b.raster.LineTo(p2.X-ox, p2.Y-oy)
		b.raster.ClosePath()
		drawn = true
	}
	if !drawn {
		return nil, image.Rectangle{}, false
	}
	cov := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	b.raster.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})
	return cov, area, true
}

// vertexBounds returns the pixel bounding box of the finite vertices,
// clipped to clip.
func vertexBounds(vs []vg.Vertex, clip image.Rectangle) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vs {
		if !finite(v) {
			continue
		}
		x, y := float64(v.X), float64(v.Y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	clampX := func(v float64) int {
		return int(math.Max(float64(clip.Min.X), math.Min(float64(clip.Max.X), v)))
	}
	clampY := func(v float64) int {
		return int(math.Max(float64(clip.Min.Y), math.Min(float64(clip.Max.Y), v)))
	}
	r := image.Rect(
		clampX(math.Floor(minX)), clampY(math.Floor(minY)),
		clampX(math.Ceil(maxX)), clampY(math.Ceil(maxY)),
	)
	return r.Intersect(clip)
}

func finite(v vg.Vertex) bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// uvField holds an interpolated texture coordinate per pixel of an area.
type uvField struct {
	u, v []float32
	ok   []bool
}

// interpolateUV assigns every pixel of area the texture coordinate of the
// triangle that contains its centre most deeply. Edge pixels whose centre
// lies just outside every triangle take the nearest triangle's value
// clamped to its edge.
func interpolateUV(vs []vg.Vertex, area image.Rectangle) uvField {
	n := area.Dx() * area.Dy()
	f := uvField{u: make([]float32, n), v: make([]float32, n), ok: make([]bool, n)}
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(-1)
	}

	for t := 0; t+2 < len(vs); t += 3 {
		a, b, c := vs[t], vs[t+1], vs[t+2]
		if !finite(a) || !finite(b) || !finite(c) {
			continue
		}
		x0, y0 := float64(a.X), float64(a.Y)
		x1, y1 := float64(b.X), float64(b.Y)
		x2, y2 := float64(c.X), float64(c.Y)
		den := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
		if math.Abs(den) < 1e-12 {
			continue
		}
		box := vertexBounds(vs[t:t+3], area).Inset(-1).Intersect(area)
		for py := box.Min.Y; py < box.Max.Y; py++ {
			cy := float64(py) + 0.5
			for px := box.Min.X; px < box.Max.X; px++ {
				cx := float64(px) + 0.5
				l0 := ((y1-y2)*(cx-x2) + (x2-x1)*(cy-y2)) / den
				l1 := ((y2-y0)*(cx-x2) + (x0-x2)*(cy-y2)) / den
				l2 := 1 - l0 - l1
				i := (py-area.Min.Y)*area.Dx() + (px - area.Min.X)
				s := min(l0, l1, l2)
				if s <= best[i] {
					continue
				}
				best[i] = s
				l0, l1, l2 = max(l0, 0), max(l1, 0), max(l2, 0)
				sum := l0 + l1 + l2
				l0, l1, l2 = l0/sum, l1/sum, l2/sum
				f.u[i] = float32(l0*float64(a.U) + l1*float64(b.U) + l2*float64(c.U))
				f.v[i] = float32(l0*float64(a.V) + l1*float64(b.V) + l2*float64(c.V))
				f.ok[i] = true
			}
		}
	}
	return f
}
