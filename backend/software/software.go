package software

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/vector"

	"github.com/gogpu/vg"
	icolor "github.com/gogpu/vg/internal/color"
)

func init() {
	vg.RegisterBackend("software", func(w, h int) (vg.Backend, error) {
		return New(w, h), nil
	})
}

// Option configures a Backend.
type Option func(*Backend)

// WithFilter sets how textures are sampled. The default is FilterBilinear.
func WithFilter(f Filter) Option {
	return func(b *Backend) {
		b.filter = f
	}
}

// WithVertexCache sets the cache used for rectangles and ellipses. The
// default is a cache of vg.DefaultVertexCacheSize entries.
func WithVertexCache(c *vg.VertexCache) Option {
	return func(b *Backend) {
		if c != nil {
			b.cache = c
		}
	}
}

// Backend rasterises triangle lists on the CPU.
//
// The color buffer holds linear, premultiplied color. Alpha blending
// composites onto it directly; the other blend modes combine straight
// colors. Backend is safe for concurrent use, submissions are serialised.
type Backend struct {
	mu      sync.Mutex
	width   int
	height  int
	pix     []vg.RGBA
	stencil []uint8
	raster  vector.Rasterizer
	filter  Filter
	cache   *vg.VertexCache
}

var (
	_ vg.Backend         = (*Backend)(nil)
	_ vg.RectangleDrawer = (*Backend)(nil)
	_ vg.EllipseDrawer   = (*Backend)(nil)
)

// New creates a backend with a transparent target of the given size.
// Non-positive sizes are treated as 1.
func New(width, height int, opts ...Option) *Backend {
	width, height = max(width, 1), max(height, 1)
	b := &Backend{
		width:   width,
		height:  height,
		pix:     make([]vg.RGBA, width*height),
		stencil: make([]uint8, width*height),
		filter:  FilterBilinear,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.cache == nil {
		b.cache = vg.NewVertexCache(0)
	}
	return b
}

// Size returns the target size in pixels.
func (b *Backend) Size() (width, height int) {
	return b.width, b.height
}

// Clear implements vg.Backend. The stencil buffer is left untouched.
func (b *Backend) Clear(c vg.RGBA) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := c.Clamp().Premultiply()
	for i := range b.pix {
		b.pix[i] = p
	}
	return nil
}

// ClearStencil resets every stencil value to zero.
func (b *Backend) ClearStencil() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.stencil)
}

// StencilAt returns the stencil value of pixel (x, y), or 0 outside the
// target.
func (b *Backend) StencilAt(x, y int) uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.stencil[y*b.width+x]
}

// SubmitTriangles implements vg.Backend.
func (b *Backend) SubmitTriangles(c vg.RGBA, vertices []vg.Vertex, ds vg.DrawState) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("software: %d vertices is not a whole number of triangles", len(vertices))
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	cov, area, ok := b.coverage(vertices, ds)
	if !ok {
		return nil
	}
	c = c.Clamp()
	b.shade(cov, area, ds, func(int, int) vg.RGBA { return c })
	return nil
}

// SubmitTexturedTriangles implements vg.Backend. tex must be a *Texture.
func (b *Backend) SubmitTexturedTriangles(tex vg.Texture, vertices []vg.Vertex, tint vg.RGBA, ds vg.DrawState) error {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return fmt.Errorf("software: unsupported texture %T", tex)
	}
	if len(vertices)%3 != 0 {
		return fmt.Errorf("software: %d vertices is not a whole number of triangles", len(vertices))
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	cov, area, ok := b.coverage(vertices, ds)
	if !ok {
		return nil
	}
	uv := interpolateUV(vertices, area)
	tint = tint.Clamp()
	b.shade(cov, area, ds, func(x, y int) vg.RGBA {
		i := (y-area.Min.Y)*area.Dx() + (x - area.Min.X)
		if !uv.ok[i] {
			return vg.Transparent
		}
		return t.sample(uv.u[i], uv.v[i], b.filter).Mul(tint)
	})
	return nil
}

// DrawRectangle implements vg.RectangleDrawer using the vertex cache.
func (b *Backend) DrawRectangle(c vg.RGBA, r vg.Rectangle, ctx vg.Context) error {
	return b.SubmitTriangles(c, b.cache.CachedRectangle(r, ctx), ctx.DrawState)
}

// DrawEllipse implements vg.EllipseDrawer using the vertex cache.
func (b *Backend) DrawEllipse(c vg.RGBA, e vg.Ellipse, ctx vg.Context) error {
	return b.SubmitTriangles(c, b.cache.CachedEllipse(e, ctx), ctx.DrawState)
}

// Cache returns the vertex cache used for rectangles and ellipses.
func (b *Backend) Cache() *vg.VertexCache {
	return b.cache
}

// clipBounds returns the region a submission may touch.
func (b *Backend) clipBounds(ds vg.DrawState) image.Rectangle {
	r := image.Rect(0, 0, b.width, b.height)
	if s, ok := ds.ScissorRect(); ok {
		r = r.Intersect(s)
	}
	return r
}

// shade applies one submission to every covered pixel of area.
func (b *Backend) shade(cov *image.Alpha, area image.Rectangle, ds vg.DrawState, color func(x, y int) vg.RGBA) {
	st := ds.Stencil
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			a := cov.AlphaAt(x-area.Min.X, y-area.Min.Y).A
			if a == 0 {
				continue
			}
			i := y*b.width + x
			switch st.Op {
			case vg.StencilClip:
				if a >= 128 {
					b.stencil[i] = st.Value
				}
				continue
			case vg.StencilIncrement:
				if a >= 128 && b.stencil[i] < 255 {
					b.stencil[i]++
				}
				continue
			}
			if !st.Test(b.stencil[i]) {
				continue
			}
			src := color(x, y)
			src.A *= float64(a) / 255
			if ds.Blend == vg.BlendAlpha {
				b.pix[i] = vg.Blend(src, b.pix[i], vg.BlendAlpha)
			} else {
				b.pix[i] = vg.Blend(src, b.pix[i].Unpremultiply(), ds.Blend).Clamp().Premultiply()
			}
		}
	}
}

// At returns the straight-alpha linear color of pixel (x, y).
func (b *Backend) At(x, y int) vg.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return vg.Transparent
	}
	return b.pix[y*b.width+x].Unpremultiply()
}

// Image returns the target encoded as 8-bit sRGB.
func (b *Backend) Image() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, p := range b.pix {
		a := icolor.Clamp01(p.A)
		o := i * 4
		if a == 0 {
			continue
		}
		s := p.Unpremultiply()
		img.Pix[o+0] = premul(icolor.EncodeByte(s.R), a)
		img.Pix[o+1] = premul(icolor.EncodeByte(s.G), a)
		img.Pix[o+2] = premul(icolor.EncodeByte(s.B), a)
		img.Pix[o+3] = icolor.ToByte(a)
	}
	return img
}

func premul(v uint8, a float64) uint8 {
	return uint8(float64(v)*a + 0.5)
}

// WritePNG encodes the target as PNG.
func (b *Backend) WritePNG(w io.Writer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("software: encode png: %w", err)
	}
	return nil
}
