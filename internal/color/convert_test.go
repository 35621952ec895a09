package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative clamps", -0.5, 0},
		{"above one clamps", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1.0/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		got := LinearToSRGB(SRGBToLinear(v))
		if math.Abs(got-v) > 1e-9 {
			t.Fatalf("LinearToSRGB(SRGBToLinear(%v)) = %v", v, got)
		}
	}
}

func TestLUTMatchesReference(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		if got, want := DecodeByte(b), SRGBToLinear(float64(i)/255); got != want {
			t.Errorf("DecodeByte(%d) = %v, want %v", i, got, want)
		}
		if got := EncodeByte(DecodeByte(b)); got != b {
			t.Errorf("EncodeByte(DecodeByte(%d)) = %d", i, got)
		}
	}
}

func TestEncodeByteKnownValues(t *testing.T) {
	if got := EncodeByte(0.5); got != 188 {
		t.Errorf("EncodeByte(0.5) = %d, want 188", got)
	}
	if got := EncodeByte(-1); got != 0 {
		t.Errorf("EncodeByte(-1) = %d, want 0", got)
	}
	if got := EncodeByte(2); got != 255 {
		t.Errorf("EncodeByte(2) = %d, want 255", got)
	}
}

func TestSpaceString(t *testing.T) {
	if Linear.String() != "linear" || SRGB.String() != "srgb" || Space(9).String() != "unknown" {
		t.Error("unexpected Space names")
	}
}
