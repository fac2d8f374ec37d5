package raster

import (
	"image"
	"math"
)

// InterpolationMode selects the sampling filter for transformed draws.
type InterpolationMode int

const (
	// InterpNearest uses nearest-neighbor sampling. Fastest, hard pixel edges.
	InterpNearest InterpolationMode = iota
	// InterpBilinear uses bilinear interpolation. Good quality for the
	// modest scale factors the blur pipeline works at.
	InterpBilinear
)

// Sample reads the source at continuous coordinates (x, y) using the given
// interpolation mode. Coordinates are in pixels relative to src.Rect.Min.
// Out-of-bounds samples are clamped to the edge.
func Sample(src *image.RGBA, x, y float64, mode InterpolationMode) (r, g, b, a uint8) {
	switch mode {
	case InterpBilinear:
		return sampleBilinear(src, x, y)
	default:
		return sampleNearest(src, x, y)
	}
}

// sampleNearest picks the pixel whose box [i, i+1) contains the coordinate,
// which is also the pixel whose center is closest under the center-at-i+0.5
// convention shared with sampleBilinear.
func sampleNearest(src *image.RGBA, x, y float64) (r, g, b, a uint8) {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	ix := clampInt(int(math.Floor(x)), 0, w-1)
	iy := clampInt(int(math.Floor(y)), 0, h-1)
	return pixelAt(src, ix, iy)
}

// sampleBilinear interpolates between the four pixels surrounding the sample
// point. The half-pixel offset places pixel centers at integer+0.5, so a
// sample exactly on a pixel center returns that pixel unchanged.
func sampleBilinear(src *image.RGBA, x, y float64) (r, g, b, a uint8) {
	w := src.Rect.Dx()
	h := src.Rect.Dy()

	fx := x - 0.5
	fy := y - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)

	r00, g00, b00, a00 := pixelAt(src, x0, y0)
	r10, g10, b10, a10 := pixelAt(src, x1, y0)
	r01, g01, b01, a01 := pixelAt(src, x0, y1)
	r11, g11, b11, a11 := pixelAt(src, x1, y1)

	r = lerp2D(r00, r10, r01, r11, tx, ty)
	g = lerp2D(g00, g10, g01, g11, tx, ty)
	b = lerp2D(b00, b10, b01, b11, tx, ty)
	a = lerp2D(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

// lerp2D bilinearly interpolates four byte values with weights (tx, ty).
func lerp2D(v00, v10, v01, v11 uint8, tx, ty float64) uint8 {
	top := float64(v00)*(1-tx) + float64(v10)*tx
	bot := float64(v01)*(1-tx) + float64(v11)*tx
	v := top*(1-ty) + bot*ty
	return uint8(math.Round(clampFloat(v, 0, 255)))
}

// pixelAt reads one pixel at integer coordinates relative to src.Rect.Min.
// The caller must ensure (x, y) is in bounds.
func pixelAt(src *image.RGBA, x, y int) (r, g, b, a uint8) {
	i := src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)
	s := src.Pix[i : i+4 : i+4]
	return s[0], s[1], s[2], s[3]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
