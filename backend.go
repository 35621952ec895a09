package vg

import "errors"

var (
	// ErrNilBackend is returned by draw calls given a nil Backend.
	ErrNilBackend = errors.New("vg: backend must not be nil")

	// ErrNilTexture is returned by image and glyph draws without a texture.
	ErrNilTexture = errors.New("vg: texture must not be nil")
)

// Texture is a backend-owned image that textured triangles sample.
// Backends type-assert the textures they are given to their own type.
type Texture interface {
	// Size returns the texture dimensions in texels.
	Size() (width, height int)
}

// Backend is the minimal capability a renderer must provide. Every drawing
// call in this package is built on these three operations, so implementing
// Backend is enough to get lines, rectangles, polygons, ellipses, images
// and glyph runs.
//
// Vertex positions are device pixels after the full transform. Colors are
// straight-alpha and linear unless the backend implements
// ColorSpaceDeclarer. Thread safety of a Backend is the implementation's
// concern; the drawing calls never lock.
type Backend interface {
	// Clear fills the whole target with c, ignoring any draw state.
	Clear(c RGBA) error

	// SubmitTriangles draws a triangle list in a single color.
	// len(vertices) is a multiple of 3.
	SubmitTriangles(c RGBA, vertices []Vertex, ds DrawState) error

	// SubmitTexturedTriangles draws a triangle list sampling tex at each
	// vertex's texture coordinate, multiplied by tint.
	SubmitTexturedTriangles(tex Texture, vertices []Vertex, tint RGBA, ds DrawState) error
}

// ColorSpaceDeclarer is implemented by backends that want colors in a space
// other than linear.
type ColorSpaceDeclarer interface {
	ColorSpace() ColorSpace
}

// LineDrawer is implemented by backends with a native line primitive.
// The output must match TessellateLine within the tessellation tolerance.
type LineDrawer interface {
	DrawLine(c RGBA, l Line, ctx Context) error
}

// RectangleDrawer is implemented by backends with a native rectangle
// primitive. The output must match TessellateRectangle within the
// tessellation tolerance.
type RectangleDrawer interface {
	DrawRectangle(c RGBA, r Rectangle, ctx Context) error
}

// EllipseDrawer is implemented by backends with a native ellipse primitive.
// The output must match TessellateEllipse within the tessellation
// tolerance.
type EllipseDrawer interface {
	DrawEllipse(c RGBA, e Ellipse, ctx Context) error
}

// backendSpace returns the color space b expects.
func backendSpace(b Backend) ColorSpace {
	if d, ok := b.(ColorSpaceDeclarer); ok {
		return d.ColorSpace()
	}
	return ColorSpaceLinear
}
