package vg

import (
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		hex  string
		want RGBA
	}{
		{"#ff0000", Red},
		{"00ff00", Green},
		{"#00f", Blue},
		{"#fff8", RGBA2(1, 1, 1, 136.0/255)},
		{"#00000080", RGBA2(0, 0, 0, 128.0/255)},
		{"bad", RGBA2(0xb/15.0, 0xa/15.0, 0xd/15.0, 1)},
		{"", Black},
		{"#12345", Black},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := Hex(tt.hex); !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLinearGammaRoundTrip(t *testing.T) {
	for i := 0; i <= 20; i++ {
		v := float64(i) / 20
		c := RGBA2(v, 1-v, v/2, 0.5)
		if got := c.Linear().Gamma(); !got.ApproxEqual(c, 1e-9) {
			t.Errorf("Gamma(Linear(%+v)) = %+v", c, got)
		}
	}
}

func TestColorSpaceConversion(t *testing.T) {
	half := RGBA2(0.5, 0.5, 0.5, 0.5)

	srgb := half.In(ColorSpaceSRGB)
	if math.Abs(srgb.R-0.7354) > 1e-3 {
		t.Errorf("linear 0.5 in sRGB = %v, want ~0.7354", srgb.R)
	}
	if srgb.A != 0.5 {
		t.Errorf("alpha changed by conversion: %v", srgb.A)
	}
	if got := half.In(ColorSpaceLinear); got != half {
		t.Errorf("In(Linear) = %+v, want unchanged", got)
	}
}

func TestPremultiply(t *testing.T) {
	c := RGBA2(1, 0.5, 0.25, 0.5)
	p := c.Premultiply()
	want := RGBA2(0.5, 0.25, 0.125, 0.5)
	if !p.ApproxEqual(want, 1e-12) {
		t.Errorf("Premultiply() = %+v, want %+v", p, want)
	}
	if got := p.Unpremultiply(); !got.ApproxEqual(c, 1e-12) {
		t.Errorf("Unpremultiply() = %+v, want %+v", got, c)
	}
	if got := RGBA2(1, 1, 1, 0).Unpremultiply(); got != Transparent {
		t.Errorf("Unpremultiply() of zero alpha = %+v, want transparent", got)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want RGBA
	}{
		{"opaque", color.NRGBA{R: 255, G: 0, B: 0, A: 255}, Red},
		{"translucent", color.NRGBA{R: 255, G: 255, B: 255, A: 51}, RGBA2(1, 1, 1, 0.2)},
		{"transparent", color.NRGBA{}, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); !got.ApproxEqual(tt.want, 1e-2) {
				t.Errorf("FromColor(%v) = %+v, want %+v", tt.c, got, tt.want)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	got := RGBA2(1, 0.5, 0, 1).Color().(color.NRGBA)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestClampLerpMul(t *testing.T) {
	if got := RGBA2(-1, 2, 0.5, 1.5).Clamp(); got != RGBA2(0, 1, 0.5, 1) {
		t.Errorf("Clamp() = %+v", got)
	}
	if got := Black.Lerp(White, 0.25); !got.ApproxEqual(RGB(0.25, 0.25, 0.25), 1e-12) {
		t.Errorf("Lerp() = %+v", got)
	}
	if got := RGB(0.5, 1, 1).Mul(RGBA2(1, 0.5, 0, 0.5)); got != RGBA2(0.5, 0.5, 0, 0.5) {
		t.Errorf("Mul() = %+v", got)
	}
}
