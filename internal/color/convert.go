package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input is clamped to [0,1].
func SRGBToLinear(s float64) float64 {
	s = Clamp01(s)
	if s <= DecodeThreshold {
		return s / LinearSlope
	}
	return math.Pow((s+Offset)/(1+Offset), Gamma)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input is clamped to [0,1].
func LinearToSRGB(l float64) float64 {
	l = Clamp01(l)
	if l <= EncodeThreshold {
		return l * LinearSlope
	}
	return (1+Offset)*math.Pow(l, 1/Gamma) - Offset
}

// Clamp01 restricts v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToByte maps a [0,1] value to [0,255] with rounding.
func ToByte(v float64) uint8 {
	return uint8(Clamp01(v)*255 + 0.5)
}
