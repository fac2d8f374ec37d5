package frost

// fadeMaskCache memoizes the directional fade mask applied after blurring.
// The mask is a linear gradient from opaque black at the still-blurred end
// to transparent at the sharp end; composited with destination-in blending
// it fades the blur out along the configured axis.
//
// The cache holds a single entry. A lookup with the same key returns the
// identical brush pointer; any field change synthesizes a new brush and
// overwrites the entry.
type fadeMaskCache struct {
	width, height int
	left, top     int
	direction     GradientDirection
	brush         *LinearGradientBrush
}

// get returns the fade-mask brush for a width x height region whose origin
// sits at (left, top). DirectionNone clears the entry and yields nil, which
// callers treat as "uniform blur, no mask".
func (c *fadeMaskCache) get(width, height, left, top int, dir GradientDirection) *LinearGradientBrush {
	if dir == DirectionNone {
		*c = fadeMaskCache{}
		return nil
	}
	if c.brush != nil &&
		c.width == width && c.height == height &&
		c.left == left && c.top == top &&
		c.direction == dir {
		return c.brush
	}
	x0, y0, x1, y1 := dir.line(float64(width), float64(height), float64(left), float64(top))
	c.width, c.height = width, height
	c.left, c.top = left, top
	c.direction = dir
	c.brush = NewLinearGradientBrush(x0, y0, x1, y1).
		AddColorStop(0, Black).
		AddColorStop(1, Transparent)
	return c.brush
}

// overlayGradientCache memoizes the overlay gradient drawn on top of the
// blurred content. Same single-entry policy as fadeMaskCache.
type overlayGradientCache struct {
	width, height int
	start, end    ARGB
	direction     GradientDirection
	brush         *LinearGradientBrush
}

// get returns the overlay brush for a width x height region anchored at the
// origin. Unlike the fade mask, DirectionNone does not disable the overlay:
// a requested gradient is never dropped, so none (and any unknown value)
// falls back to top-to-bottom.
func (c *overlayGradientCache) get(width, height int, start, end ARGB, dir GradientDirection) *LinearGradientBrush {
	if c.brush != nil &&
		c.width == width && c.height == height &&
		c.start == start && c.end == end &&
		c.direction == dir {
		return c.brush
	}
	x0, y0, x1, y1 := dir.line(float64(width), float64(height), 0, 0)
	c.width, c.height = width, height
	c.start, c.end = start, end
	c.direction = dir
	c.brush = NewLinearGradientBrush(x0, y0, x1, y1).
		AddColorStop(0, start.Unpack()).
		AddColorStop(1, end.Unpack())
	return c.brush
}
