package color

// sRGBToLinearLUT maps every sRGB byte to its linear value.
var sRGBToLinearLUT [256]float64

// linearToSRGBLUT maps linear values quantised to 12 bits back to sRGB bytes.
// 4096 entries are enough precision for 8-bit output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float64(i) / 255)
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = ToByte(LinearToSRGB(float64(i) / 4095))
	}
}

// DecodeByte converts an sRGB byte to a linear value using the lookup table.
//
// Example:
//
//	r := DecodeByte(128) // ~0.2159 (not 0.5!)
func DecodeByte(s uint8) float64 {
	return sRGBToLinearLUT[s]
}

// EncodeByte converts a linear value to an sRGB byte using the lookup table.
// Input is clamped to [0,1].
//
// Example:
//
//	s := EncodeByte(0.5) // 188 (not 128!)
func EncodeByte(l float64) uint8 {
	return linearToSRGBLUT[int(Clamp01(l)*4095+0.5)]
}
