package frost

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"6-digit red", "FF0000", Red},
		{"hash prefix", "#00FF00", Green},
		{"3-digit", "00F", Blue},
		{"4-digit with alpha", "F00F", Red},
		{"8-digit with alpha", "0000FF80", RGBA{R: 0, G: 0, B: 1, A: 128.0 / 255.0}},
		{"invalid length", "FF0000F", Black},
		{"garbage", "xyz", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorNear(got, tt.want, 0.005) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"start", 0, Red},
		{"end", 1, Blue},
		{"middle", 0.5, RGBA{R: 0.5, G: 0, B: 0.5, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Red.Lerp(Blue, tt.t)
			if !colorNear(got, tt.want, 0.001) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorRoundtrip(t *testing.T) {
	// frost.RGBA -> color.Color -> FromColor -> frost.RGBA
	original := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 1}
	roundtripped := FromColor(original.Color())
	const tolerance = 0.005
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v -> %v", original, roundtripped)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	if !colorNear(got, Red, 0.001) {
		t.Errorf("FromColor(red) = %v, want %v", got, Red)
	}
}

func TestARGBAccessors(t *testing.T) {
	c := ARGBOf(0x80, 0x11, 0x22, 0x33)
	if ARGB(0x80112233) != c {
		t.Fatalf("ARGBOf = %#x, want 0x80112233", uint32(c))
	}
	if c.Alpha() != 0x80 || c.Red() != 0x11 || c.Green() != 0x22 || c.Blue() != 0x33 {
		t.Errorf("accessors = (%#x, %#x, %#x, %#x)", c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
}

func TestARGBUnpack(t *testing.T) {
	tests := []struct {
		name string
		c    ARGB
		want RGBA
	}{
		{"opaque white", ARGBOf(255, 255, 255, 255), White},
		{"transparent", TransparentARGB, Transparent},
		{"half alpha black", ARGBOf(128, 0, 0, 0), RGBA{A: 128.0 / 255.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Unpack()
			if !colorNear(got, tt.want, 0.001) {
				t.Errorf("Unpack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackARGB(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want ARGB
	}{
		{"opaque red", Red, ARGBOf(255, 255, 0, 0)},
		{"transparent", Transparent, TransparentARGB},
		{"clamped above", RGBA{R: 2, G: -1, B: 0, A: 1.5}, ARGBOf(255, 255, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackARGB(tt.c); got != tt.want {
				t.Errorf("PackARGB(%v) = %#x, want %#x", tt.c, uint32(got), uint32(tt.want))
			}
		})
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
