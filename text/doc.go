// Package text turns strings into glyph runs for vg.DrawGlyphs.
//
// Shaping uses go-text/typesetting's HarfBuzz port, after the text is split
// into directional runs with the Unicode bidi algorithm. Rasterising glyphs
// into an atlas texture is up to the caller; Layout only needs to know
// where each glyph sits in that atlas.
//
//	f, err := text.ParseFont(ttf)
//	line := text.NewShaper().Shape("Hello, world", f, 16)
//	glyphs, missing := text.Layout(line, atlas, vg.Pt(10, 40))
//	vg.DrawGlyphs(b, ctx, atlasTexture, glyphs, vg.Black)
package text
