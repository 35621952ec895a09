package vg

import "fmt"

// submit sends a colored triangle list, skipping empty lists.
func submit(op string, b Backend, ctx Context, c RGBA, vs []Vertex) error {
	if len(vs) == 0 {
		return nil
	}
	return wrap(op, b.SubmitTriangles(c.In(backendSpace(b)), vs, ctx.DrawState))
}

// submitTextured sends a textured triangle list, skipping empty lists.
func submitTextured(op string, b Backend, ctx Context, tex Texture, tint RGBA, vs []Vertex) error {
	if len(vs) == 0 {
		return nil
	}
	return wrap(op, b.SubmitTexturedTriangles(tex, vs, tint.In(backendSpace(b)), ctx.DrawState))
}

// wrap prefixes a backend error with the draw operation that caused it.
func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("vg: %s: %w", op, err)
	}
	return nil
}

// skip reports whether a draw can be dropped before tessellation.
func skip(op string, b Backend, ctx Context) (bool, error) {
	if b == nil {
		return true, ErrNilBackend
	}
	if ctx.DrawState.Culled() {
		Logger().Debug("vg: draw culled by empty scissor", "op", op)
		return true, nil
	}
	return false, nil
}

// Clear fills the backend's whole target with c.
func Clear(b Backend, c RGBA) error {
	if b == nil {
		return ErrNilBackend
	}
	if err := b.Clear(c.In(backendSpace(b))); err != nil {
		return fmt.Errorf("vg: clear: %w", err)
	}
	return nil
}

// DrawLine strokes l.
func DrawLine(b Backend, ctx Context, c RGBA, l Line) error {
	if done, err := skip("line", b, ctx); done {
		return err
	}
	if ld, ok := b.(LineDrawer); ok {
		return wrap("line", ld.DrawLine(c.In(backendSpace(b)), l, ctx))
	}
	return submit("line", b, ctx, c, TessellateLine(l, ctx))
}

// StrokeLine strokes the segment from p0 to p1 with butt caps.
func StrokeLine(b Backend, ctx Context, c RGBA, width float64, p0, p1 Point) error {
	return DrawLine(b, ctx, c, Line{P0: p0, P1: p1, Width: width})
}

// DrawRectangle fills r.
func DrawRectangle(b Backend, ctx Context, c RGBA, r Rectangle) error {
	if done, err := skip("rectangle", b, ctx); done {
		return err
	}
	if rd, ok := b.(RectangleDrawer); ok {
		return wrap("rectangle", rd.DrawRectangle(c.In(backendSpace(b)), r, ctx))
	}
	return submit("rectangle", b, ctx, c, TessellateRectangle(r, ctx))
}

// FillRect fills a plain rectangle.
func FillRect(b Backend, ctx Context, c RGBA, r Rect) error {
	return DrawRectangle(b, ctx, c, Rectangle{Rect: r})
}

// DrawRectangleBorder strokes the inside edge of r.
func DrawRectangleBorder(b Backend, ctx Context, c RGBA, r Rectangle, border Border) error {
	if done, err := skip("rectangle border", b, ctx); done {
		return err
	}
	return submit("rectangle border", b, ctx, c, TessellateRectangleBorder(r, border, ctx))
}

// DrawPolygon fills p.
func DrawPolygon(b Backend, ctx Context, c RGBA, p Polygon) error {
	if done, err := skip("polygon", b, ctx); done {
		return err
	}
	return submit("polygon", b, ctx, c, TessellatePolygon(p, ctx))
}

// FillPolygon fills a convex polygon given by its points.
func FillPolygon(b Backend, ctx Context, c RGBA, points ...Point) error {
	return DrawPolygon(b, ctx, c, Polygon{Points: points})
}

// DrawEllipse fills e.
func DrawEllipse(b Backend, ctx Context, c RGBA, e Ellipse) error {
	if done, err := skip("ellipse", b, ctx); done {
		return err
	}
	if ed, ok := b.(EllipseDrawer); ok {
		return wrap("ellipse", ed.DrawEllipse(c.In(backendSpace(b)), e, ctx))
	}
	return submit("ellipse", b, ctx, c, TessellateEllipse(e, ctx))
}

// FillEllipse fills the ellipse inscribed in r.
func FillEllipse(b Backend, ctx Context, c RGBA, r Rect) error {
	return DrawEllipse(b, ctx, c, EllipseInRect(r))
}

// FillCircle fills a circle.
func FillCircle(b Backend, ctx Context, c RGBA, center Point, radius float64) error {
	return DrawEllipse(b, ctx, c, Circle(center, radius))
}

// DrawArc fills the pie slice of e between the angles of arc.
func DrawArc(b Backend, ctx Context, c RGBA, e Ellipse, arc Arc) error {
	e.Arc = &arc
	return DrawEllipse(b, ctx, c, e)
}

// DrawEllipseBorder strokes the inside edge of e, or of its arc.
func DrawEllipseBorder(b Backend, ctx Context, c RGBA, e Ellipse, border Border) error {
	if done, err := skip("ellipse border", b, ctx); done {
		return err
	}
	return submit("ellipse border", b, ctx, c, TessellateEllipseBorder(e, border, ctx))
}

// DrawImage draws the q.Src region of tex into q.Dst, multiplied by tint.
func DrawImage(b Backend, ctx Context, tex Texture, q ImageQuad, tint RGBA) error {
	if done, err := skip("image", b, ctx); done {
		return err
	}
	if tex == nil {
		return ErrNilTexture
	}
	w, h := tex.Size()
	return submitTextured("image", b, ctx, tex, tint, TessellateImage(q, w, h, ctx))
}

// DrawTexture draws the whole of tex at its natural size with its top-left
// corner at the model origin.
func DrawTexture(b Backend, ctx Context, tex Texture) error {
	if tex == nil {
		return ErrNilTexture
	}
	w, h := tex.Size()
	return DrawImage(b, ctx, tex, ImageQuad{Dst: NewRect(0, 0, float64(w), float64(h))}, White)
}

// DrawGlyphs draws glyph quads sampling the atlas texture, colored by tint.
// Glyph rasterisation is up to the caller; see package text for layout.
func DrawGlyphs(b Backend, ctx Context, atlas Texture, glyphs []Glyph, tint RGBA) error {
	if done, err := skip("glyphs", b, ctx); done {
		return err
	}
	if atlas == nil {
		return ErrNilTexture
	}
	w, h := atlas.Size()
	return submitTextured("glyphs", b, ctx, atlas, tint, TessellateGlyphs(glyphs, w, h, ctx))
}
