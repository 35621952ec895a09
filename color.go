package vg

import (
	"image/color"
	"math"

	icolor "github.com/gogpu/vg/internal/color"
)

// ColorSpace identifies how the channels of an RGBA are encoded.
type ColorSpace = icolor.Space

const (
	// ColorSpaceLinear is linear-light RGB. All blending math runs here and
	// backends receive colors in this space unless they ask otherwise.
	ColorSpaceLinear = icolor.Linear
	// ColorSpaceSRGB is gamma-encoded sRGB.
	ColorSpaceSRGB = icolor.SRGB
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]. Alpha is straight
// (not premultiplied) and always linear.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
// The channels are written as-is; convert with Gamma first if c is linear
// and the consumer expects sRGB bytes.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: icolor.ToByte(c.R),
		G: icolor.ToByte(c.G),
		B: icolor.ToByte(c.B),
		A: icolor.ToByte(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
// The result is in the same space as the input, usually sRGB.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color is premultiplied.
	fa := float64(a)
	return RGBA{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// The result is gamma-encoded, as hex colors conventionally are.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// ToLinear converts a gamma-encoded sRGB color to linear light.
func ToLinear(c RGBA) RGBA {
	return RGBA{
		R: icolor.SRGBToLinear(c.R),
		G: icolor.SRGBToLinear(c.G),
		B: icolor.SRGBToLinear(c.B),
		A: c.A,
	}
}

// ToGamma converts a linear color to gamma-encoded sRGB.
func ToGamma(c RGBA) RGBA {
	return RGBA{
		R: icolor.LinearToSRGB(c.R),
		G: icolor.LinearToSRGB(c.G),
		B: icolor.LinearToSRGB(c.B),
		A: c.A,
	}
}

// Linear is shorthand for ToLinear(c).
func (c RGBA) Linear() RGBA { return ToLinear(c) }

// Gamma is shorthand for ToGamma(c).
func (c RGBA) Gamma() RGBA { return ToGamma(c) }

// In returns c, assumed linear, encoded for the given space.
func (c RGBA) In(space ColorSpace) RGBA {
	if space == ColorSpaceSRGB {
		return ToGamma(c)
	}
	return c
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return RGBA{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Mul multiplies the channels of two colors, used for tinting.
func (c RGBA) Mul(other RGBA) RGBA {
	return RGBA{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B, A: c.A * other.A}
}

// Clamp restricts every channel to [0, 1].
func (c RGBA) Clamp() RGBA {
	return RGBA{
		R: icolor.Clamp01(c.R),
		G: icolor.Clamp01(c.G),
		B: icolor.Clamp01(c.B),
		A: icolor.Clamp01(c.A),
	}
}

// ApproxEqual reports whether every channel is within eps.
func (c RGBA) ApproxEqual(other RGBA, eps float64) bool {
	return math.Abs(c.R-other.R) <= eps && math.Abs(c.G-other.G) <= eps &&
		math.Abs(c.B-other.B) <= eps && math.Abs(c.A-other.A) <= eps
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
