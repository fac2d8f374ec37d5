package frost

// overlayState carries the overlay configuration shared by both controller
// strategies and composites it after the blurred content: the overlay
// gradient when either gradient color is non-transparent, else the solid
// color when non-transparent.
//
// Setting the solid color clears the gradient; setting the gradient leaves
// the solid color in place but supersedes it while active.
type overlayState struct {
	solid      ARGB
	start, end ARGB
	direction  GradientDirection
	cache      overlayGradientCache
}

// setSolid reports whether the configuration changed.
func (o *overlayState) setSolid(c ARGB) bool {
	if o.solid == c {
		return false
	}
	o.solid = c
	o.start = TransparentARGB
	o.end = TransparentARGB
	return true
}

// setGradient reports whether the configuration changed.
func (o *overlayState) setGradient(start, end ARGB, dir GradientDirection) bool {
	if o.start == start && o.end == end && o.direction == dir {
		return false
	}
	o.start = start
	o.end = end
	o.direction = dir
	return true
}

// draw composites the configured overlay over a width x height area at the
// canvas origin.
func (o *overlayState) draw(dst *Canvas, width, height int) {
	if o.start != TransparentARGB || o.end != TransparentARGB {
		if width > 0 && height > 0 {
			brush := o.cache.get(width, height, o.start, o.end, o.direction)
			dst.FillRect(0, 0, float64(width), float64(height), brush)
		}
		return
	}
	if o.solid != TransparentARGB {
		dst.FillRect(0, 0, float64(width), float64(height), Solid(o.solid.Unpack()))
	}
}
