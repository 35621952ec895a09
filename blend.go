package vg

import (
	"fmt"
	"strings"

	icolor "github.com/gogpu/vg/internal/color"
)

// BlendMode selects how a source color combines with the destination.
// All modes operate on straight-alpha colors in linear space.
type BlendMode uint8

const (
	// BlendAlpha is standard source-over compositing (default).
	BlendAlpha BlendMode = iota
	// BlendAdd sums the channels and clamps to [0, 1].
	BlendAdd
	// BlendMultiply multiplies the channels.
	BlendMultiply
	// BlendInvert inverts the destination, weighted by the source alpha.
	BlendInvert
	// BlendLighter keeps the larger of each channel.
	BlendLighter
	// BlendReplace writes the source unchanged.
	BlendReplace
)

var blendModeNames = [...]string{
	BlendAlpha:    "alpha",
	BlendAdd:      "add",
	BlendMultiply: "multiply",
	BlendInvert:   "invert",
	BlendLighter:  "lighter",
	BlendReplace:  "replace",
}

// String returns the lower-case name of the mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// ParseBlendMode parses a mode name as returned by String.
func ParseBlendMode(s string) (BlendMode, error) {
	for i, name := range blendModeNames {
		if strings.EqualFold(s, name) {
			return BlendMode(i), nil
		}
	}
	return BlendAlpha, fmt.Errorf("vg: unknown blend mode %q", s)
}

// Blend blends src onto dst using the specified mode.
//
//	Alpha:    rgb = src*src.a + dst*(1-src.a), a = src.a + dst.a*(1-src.a)
//	Add:      every channel = min(1, src+dst)
//	Multiply: every channel = src*dst
//	Invert:   rgb = (1-dst)*src.a + dst*(1-src.a), a = dst.a
//	Lighter:  every channel = max(src, dst)
//	Replace:  src
//
// Unknown modes fall back to Alpha.
func Blend(src, dst RGBA, mode BlendMode) RGBA {
	switch mode {
	case BlendAdd:
		return RGBA{
			R: icolor.Clamp01(src.R + dst.R),
			G: icolor.Clamp01(src.G + dst.G),
			B: icolor.Clamp01(src.B + dst.B),
			A: icolor.Clamp01(src.A + dst.A),
		}
	case BlendMultiply:
		return RGBA{R: src.R * dst.R, G: src.G * dst.G, B: src.B * dst.B, A: src.A * dst.A}
	case BlendInvert:
		inv := 1 - src.A
		return RGBA{
			R: (1-dst.R)*src.A + dst.R*inv,
			G: (1-dst.G)*src.A + dst.G*inv,
			B: (1-dst.B)*src.A + dst.B*inv,
			A: dst.A,
		}
	case BlendLighter:
		return RGBA{R: max(src.R, dst.R), G: max(src.G, dst.G), B: max(src.B, dst.B), A: max(src.A, dst.A)}
	case BlendReplace:
		return src
	default:
		return sourceOver(src, dst)
	}
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst RGBA) RGBA {
	invSrcA := 1.0 - src.A
	return RGBA{
		R: src.R*src.A + dst.R*invSrcA,
		G: src.G*src.A + dst.G*invSrcA,
		B: src.B*src.A + dst.B*invSrcA,
		A: src.A + dst.A*invSrcA,
	}
}
