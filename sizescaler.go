package frost

import "math"

// sizeScaler derives the downscaled snapshot size from the output region's
// measured size. Blurring a smaller buffer and stretching it back up is what
// keeps the snapshot strategy cheap; the scale factor trades sharpness the
// blur would destroy anyway for fill-rate.
type sizeScaler struct {
	factor float64
}

// scaledSize is a snapshot buffer size plus the per-axis ratio back to the
// measured size. The axes are scaled independently: rounding each dimension
// separately means width and height rarely share an exact ratio, and reusing
// a single uniform scale would drift the capture by up to a pixel.
type scaledSize struct {
	width, height  int
	scaleX, scaleY float64
}

func newSizeScaler(factor float64) sizeScaler {
	return sizeScaler{factor: factor}
}

// isZeroSized reports whether the measured size defers initialization.
// A factor of exactly 1 disables downscaling entirely, and a zero-area
// output has nothing to capture yet (typical before first layout).
func (s sizeScaler) isZeroSized(measuredW, measuredH int) bool {
	return s.factor == 1 || measuredW <= 0 || measuredH <= 0
}

// scale returns the snapshot size for a measured output size: each dimension
// is round(measured/factor), clamped to at least 1.
func (s sizeScaler) scale(measuredW, measuredH int) scaledSize {
	w := scaleDim(measuredW, s.factor)
	h := scaleDim(measuredH, s.factor)
	return scaledSize{
		width:  w,
		height: h,
		scaleX: float64(measuredW) / float64(w),
		scaleY: float64(measuredH) / float64(h),
	}
}

func scaleDim(measured int, factor float64) int {
	d := int(math.Round(float64(measured) / factor))
	if d < 1 {
		d = 1
	}
	return d
}
