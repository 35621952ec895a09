// Package color implements the sRGB transfer function used by vg.
//
// The constants are the canonical IEC 61966-2-1 breakpoints. Alpha is never
// gamma-encoded, so the helpers here only ever touch color channels.
package color

// Space identifies how the color channels of a value are encoded.
type Space uint8

const (
	// Linear is linear-light RGB. Blending happens here.
	Linear Space = iota
	// SRGB is gamma-encoded sRGB, the space of most images and displays.
	SRGB
)

// String returns the name of the space.
func (s Space) String() string {
	switch s {
	case Linear:
		return "linear"
	case SRGB:
		return "srgb"
	default:
		return "unknown"
	}
}

// sRGB transfer function constants.
const (
	// DecodeThreshold is the encoded value below which decoding is linear.
	DecodeThreshold = 0.04045
	// EncodeThreshold is the linear value below which encoding is linear.
	EncodeThreshold = 0.0031308
	// LinearSlope is the slope of the linear segment.
	LinearSlope = 12.92
	// Gamma is the exponent of the power-law segment.
	Gamma = 2.4
	// Offset is the offset of the power-law segment.
	Offset = 0.055
)
