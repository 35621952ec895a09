package software

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/vg"
	icolor "github.com/gogpu/vg/internal/color"
)

// Filter selects how textures are sampled.
type Filter uint8

const (
	// FilterBilinear blends the four nearest texels.
	FilterBilinear Filter = iota
	// FilterNearest picks the nearest texel.
	FilterNearest
)

func (f Filter) String() string {
	if f == FilterNearest {
		return "nearest"
	}
	return "bilinear"
}

// Texture is an image uploaded for sampling by a Backend. Texels are kept
// as linear premultiplied color.
type Texture struct {
	width  int
	height int
	texels []vg.RGBA
}

var _ vg.Texture = (*Texture)(nil)

// NewTexture converts img, assumed sRGB-encoded, into a texture. An
// *image.Alpha becomes white with the image's alpha, which suits glyph
// atlases tinted at draw time.
func NewTexture(img image.Image) *Texture {
	r := img.Bounds()
	t := &Texture{width: r.Dx(), height: r.Dy(), texels: make([]vg.RGBA, r.Dx()*r.Dy())}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			lin := vg.RGBA{
				R: icolor.DecodeByte(c.R),
				G: icolor.DecodeByte(c.G),
				B: icolor.DecodeByte(c.B),
				A: float64(c.A) / 255,
			}
			t.texels[(y-r.Min.Y)*t.width+(x-r.Min.X)] = lin.Premultiply()
		}
	}
	return t
}

// Size implements vg.Texture.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

func (t *Texture) texel(x, y int) vg.RGBA {
	x = min(max(x, 0), t.width-1)
	y = min(max(y, 0), t.height-1)
	return t.texels[y*t.width+x]
}

// sample returns the straight-alpha color at normalised coordinates (u, v),
// clamped to the edges.
func (t *Texture) sample(u, v float32, f Filter) vg.RGBA {
	if t.width == 0 || t.height == 0 {
		return vg.Transparent
	}
	fx := float64(u) * float64(t.width)
	fy := float64(v) * float64(t.height)
	if f == FilterNearest {
		return t.texel(int(math.Floor(fx)), int(math.Floor(fy))).Unpremultiply()
	}
	fx, fy = fx-0.5, fy-0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0
	ix, iy := int(x0), int(y0)
	top := t.texel(ix, iy).Lerp(t.texel(ix+1, iy), tx)
	bottom := t.texel(ix, iy+1).Lerp(t.texel(ix+1, iy+1), tx)
	return top.Lerp(bottom, ty).Unpremultiply()
}
