package vg

// textureUV converts a texel rectangle to normalised texture coordinates.
// An empty src selects the whole texture.
func textureUV(src Rect, texW, texH int) Rect {
	if src.IsEmpty() || texW <= 0 || texH <= 0 {
		return Rect{W: 1, H: 1}
	}
	w, h := float64(texW), float64(texH)
	return Rect{X: src.X / w, Y: src.Y / h, W: src.W / w, H: src.H / h}
}

// TessellateImage maps the source rectangle of a texture of the given size
// onto the destination rectangle: two triangles with texture coordinates.
func TessellateImage(q ImageQuad, texW, texH int, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	if q.Dst.IsEmpty() {
		Logger().Debug("vg: degenerate image destination", "dst", q.Dst)
		return nil
	}
	e := newEmitter(ctx.Full(), 6)
	e.texQuad(q.Dst, textureUV(q.Src, texW, texH))
	return e.out
}

// TessellateGlyphs emits one textured quad per glyph, all sampling the
// same atlas texture. Glyphs with an empty cell or destination, such as
// spaces, are skipped.
func TessellateGlyphs(glyphs []Glyph, atlasW, atlasH int, ctx Context) []Vertex {
	if ctx.DrawState.Culled() || len(glyphs) == 0 {
		return nil
	}
	e := newEmitter(ctx.Full(), 6*len(glyphs))
	for _, g := range glyphs {
		if g.Dst.IsEmpty() || g.Src.IsEmpty() {
			continue
		}
		e.texQuad(g.Dst, textureUV(g.Src, atlasW, atlasH))
	}
	return e.out
}
