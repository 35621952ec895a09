package software

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vg"
)

func newScene(t *testing.T, w, h int) (*Backend, vg.Context) {
	t.Helper()
	b := New(w, h)
	require.NoError(t, vg.Clear(b, vg.Black))
	return b, vg.NewContext(float64(w), float64(h))
}

func TestFillRectCoversExactPixels(t *testing.T) {
	b, ctx := newScene(t, 20, 20)
	require.NoError(t, vg.FillRect(b, ctx, vg.White, vg.NewRect(5, 5, 10, 10)))

	assert.True(t, b.At(5, 5).ApproxEqual(vg.White, 1e-6), "top-left inside")
	assert.True(t, b.At(14, 14).ApproxEqual(vg.White, 1e-6), "bottom-right inside")
	assert.True(t, b.At(10, 10).ApproxEqual(vg.White, 0.01), "diagonal seam is fully covered")
	assert.True(t, b.At(4, 5).ApproxEqual(vg.Black, 1e-6), "left of rect")
	assert.True(t, b.At(15, 15).ApproxEqual(vg.Black, 1e-6), "right of rect")
}

func TestScissorLimitsDrawing(t *testing.T) {
	b, ctx := newScene(t, 20, 20)
	ctx = ctx.ClipDevice(image.Rect(0, 0, 10, 20))
	require.NoError(t, vg.FillRect(b, ctx, vg.Red, vg.NewRect(0, 0, 20, 20)))

	assert.True(t, b.At(9, 3).ApproxEqual(vg.Red, 1e-6))
	assert.True(t, b.At(10, 3).ApproxEqual(vg.Black, 1e-6))
}

func TestBlendModes(t *testing.T) {
	half := vg.RGBA{R: 1, G: 0, B: 0, A: 0.5}
	tests := []struct {
		name string
		mode vg.BlendMode
		want vg.RGBA
	}{
		{"alpha", vg.BlendAlpha, vg.RGBA{R: 0.5, G: 0, B: 0, A: 1}},
		{"add", vg.BlendAdd, vg.RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"replace", vg.BlendReplace, half},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ctx := newScene(t, 4, 4)
			ctx = ctx.WithBlend(tt.mode)
			require.NoError(t, vg.FillRect(b, ctx, half, vg.NewRect(0, 0, 4, 4)))
			got := b.At(1, 1)
			assert.True(t, got.ApproxEqual(tt.want, 1e-6), "got %+v, want %+v", got, tt.want)
		})
	}
}

func TestStencilClipThenInside(t *testing.T) {
	b, ctx := newScene(t, 20, 20)

	clipCtx := ctx.WithStencil(vg.Stencil{Op: vg.StencilClip, Value: 1})
	require.NoError(t, vg.FillRect(b, clipCtx, vg.White, vg.NewRect(0, 0, 10, 20)))
	assert.Equal(t, uint8(1), b.StencilAt(2, 2))
	assert.Equal(t, uint8(0), b.StencilAt(15, 2))
	assert.True(t, b.At(2, 2).ApproxEqual(vg.Black, 1e-6), "clip pass draws no color")

	inside := ctx.WithStencil(vg.Stencil{Op: vg.StencilInside, Value: 1})
	require.NoError(t, vg.FillRect(b, inside, vg.Green, vg.NewRect(0, 0, 20, 20)))
	assert.True(t, b.At(2, 2).ApproxEqual(vg.Green, 1e-6))
	assert.True(t, b.At(15, 2).ApproxEqual(vg.Black, 1e-6))

	outside := ctx.WithStencil(vg.Stencil{Op: vg.StencilOutside, Value: 1})
	require.NoError(t, vg.FillRect(b, outside, vg.Blue, vg.NewRect(0, 0, 20, 20)))
	assert.True(t, b.At(2, 2).ApproxEqual(vg.Green, 1e-6))
	assert.True(t, b.At(15, 2).ApproxEqual(vg.Blue, 1e-6))

	b.ClearStencil()
	assert.Equal(t, uint8(0), b.StencilAt(2, 2))
}

func TestStencilIncrement(t *testing.T) {
	b, ctx := newScene(t, 10, 10)
	inc := ctx.WithStencil(vg.Stencil{Op: vg.StencilIncrement})
	for range 3 {
		require.NoError(t, vg.FillRect(b, inc, vg.White, vg.NewRect(0, 0, 10, 10)))
	}
	assert.Equal(t, uint8(3), b.StencilAt(5, 5))
}

func TestCircleIsCachedAndRound(t *testing.T) {
	b, ctx := newScene(t, 64, 64)
	for range 2 {
		require.NoError(t, vg.FillCircle(b, ctx, vg.White, vg.Pt(32, 32), 20))
	}
	assert.Equal(t, 1, b.Cache().Len())
	assert.InDelta(t, 0.5, b.Cache().HitRate(), 1e-9)

	assert.True(t, b.At(32, 32).ApproxEqual(vg.White, 1e-6))
	assert.True(t, b.At(32, 14).ApproxEqual(vg.White, 0.01), "inside near the top")
	assert.True(t, b.At(3, 3).ApproxEqual(vg.Black, 1e-6), "corner stays empty")
}

func TestTexturedQuadSamplesTexture(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{B: 255, A: 255})
	tex := NewTexture(src)
	w, h := tex.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 1, h)

	b := New(20, 10, WithFilter(FilterNearest))
	ctx := vg.NewContext(20, 10)
	q := vg.ImageQuad{Dst: vg.NewRect(0, 0, 20, 10)}
	require.NoError(t, vg.DrawImage(b, ctx, tex, q, vg.White))

	assert.True(t, b.At(2, 5).ApproxEqual(vg.Red, 1e-6), "left half samples red, got %+v", b.At(2, 5))
	assert.True(t, b.At(17, 5).ApproxEqual(vg.Blue, 1e-6), "right half samples blue, got %+v", b.At(17, 5))
}

func TestAlphaAtlasIsTinted(t *testing.T) {
	atlas := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range atlas.Pix {
		atlas.Pix[i] = 255
	}
	b := New(8, 8)
	ctx := vg.NewContext(8, 8)
	glyphs := []vg.Glyph{{Src: vg.NewRect(0, 0, 4, 4), Dst: vg.NewRect(2, 2, 4, 4)}}
	require.NoError(t, vg.DrawGlyphs(b, ctx, NewTexture(atlas), glyphs, vg.Green))

	assert.True(t, b.At(3, 3).ApproxEqual(vg.Green, 1e-6))
	assert.Equal(t, 0.0, b.At(0, 0).A)
}

func TestForeignTextureRejected(t *testing.T) {
	b := New(4, 4)
	err := b.SubmitTexturedTriangles(otherTexture{}, make([]vg.Vertex, 3), vg.White, vg.DefaultDrawState())
	assert.Error(t, err)
	assert.Error(t, b.SubmitTriangles(vg.White, make([]vg.Vertex, 2), vg.DefaultDrawState()))
}

type otherTexture struct{}

func (otherTexture) Size() (int, int) { return 1, 1 }

func TestWritePNG(t *testing.T) {
	b, ctx := newScene(t, 8, 8)
	require.NoError(t, vg.FillRect(b, ctx, vg.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, vg.NewRect(0, 0, 8, 8)))

	var buf bytes.Buffer
	require.NoError(t, b.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, g, bl, a := img.At(4, 4).RGBA()
	// Linear 0.5 encodes to sRGB 188.
	assert.Equal(t, uint32(188), r>>8)
	assert.Equal(t, r, g)
	assert.Equal(t, r, bl)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRegistered(t *testing.T) {
	b, err := vg.NewBackend("software", 16, 8)
	require.NoError(t, err)
	w, h := b.(*Backend).Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 8, h)
}

func TestNonFiniteVerticesIgnored(t *testing.T) {
	b, _ := newScene(t, 4, 4)
	nan := float32(math.NaN())
	vs := []vg.Vertex{{X: nan, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	require.NoError(t, b.SubmitTriangles(vg.White, vs, vg.DefaultDrawState()))
	assert.True(t, b.At(3, 1).ApproxEqual(vg.Black, 1e-6))
}
