package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLinearToSRGBEdgeCases tests edge cases for linear to sRGB conversion.
func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTripSRGBLinear tests round-trip conversion accuracy.
// Maximum error should be less than 1/255 to preserve 8-bit precision.
func TestRoundTripSRGBLinear(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		srgb := float32(i) / 255.0
		linear := SRGBToLinear(srgb)
		roundTrip := LinearToSRGB(linear)

		diff := float32(math.Abs(float64(roundTrip - srgb)))
		if diff > maxError {
			t.Errorf("Round-trip error for %d/255: got %v, want %v, diff %v (max %v)",
				i, roundTrip, srgb, diff, maxError)
		}
	}
}

// TestColorConversionPreservesAlpha verifies alpha is never gamma-encoded.
func TestColorConversionPreservesAlpha(t *testing.T) {
	c := ColorF32{R: 0.5, G: 0.25, B: 0.75, A: 0.5}

	linear := SRGBToLinearColor(c)
	if linear.A != c.A {
		t.Errorf("SRGBToLinearColor alpha = %v, want %v", linear.A, c.A)
	}

	back := LinearToSRGBColor(linear)
	if back.A != c.A {
		t.Errorf("LinearToSRGBColor alpha = %v, want %v", back.A, c.A)
	}
	if !floatNear(back.R, c.R, 1e-4) || !floatNear(back.G, c.G, 1e-4) || !floatNear(back.B, c.B, 1e-4) {
		t.Errorf("round-trip color = %+v, want %+v", back, c)
	}
}

// floatNear reports whether two float32 values are within epsilon.
func floatNear(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}
