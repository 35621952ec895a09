package text

import "github.com/gogpu/vg"

// AtlasEntry locates a rasterised glyph in an atlas texture.
type AtlasEntry struct {
	// Src is the glyph's cell in the atlas, in texels.
	Src vg.Rect
	// Bearing is the offset from the pen position to the top-left corner
	// of the cell, in pixels at the size the glyph was rasterised.
	Bearing vg.Point
}

// Atlas maps glyphs to their atlas cells.
type Atlas interface {
	Lookup(id GlyphID) (AtlasEntry, bool)
}

// MapAtlas is an Atlas backed by a map.
type MapAtlas map[GlyphID]AtlasEntry

// Lookup implements Atlas.
func (m MapAtlas) Lookup(id GlyphID) (AtlasEntry, bool) {
	e, ok := m[id]
	return e, ok
}

// Layout places the glyphs of line with the pen starting at origin, the
// left end of the baseline in model space. Glyphs the atlas does not know
// are skipped and counted in missing; glyphs with an empty cell, such as
// spaces, are skipped silently.
func Layout(line Line, atlas Atlas, origin vg.Point) (glyphs []vg.Glyph, missing int) {
	all := line.Glyphs()
	if atlas == nil {
		return nil, len(all)
	}
	for _, g := range all {
		e, ok := atlas.Lookup(g.ID)
		if !ok {
			missing++
			continue
		}
		if e.Src.IsEmpty() {
			continue
		}
		glyphs = append(glyphs, vg.Glyph{
			Src: e.Src,
			Dst: vg.NewRect(origin.X+g.X+e.Bearing.X, origin.Y+g.Y+e.Bearing.Y, e.Src.W, e.Src.H),
		})
	}
	if missing > 0 {
		vg.Logger().Debug("text: glyphs missing from atlas", "missing", missing)
	}
	return glyphs, missing
}
