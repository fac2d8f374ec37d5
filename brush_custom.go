package frost

import "math"

// ColorFunc is a function that returns a color at a given position.
// Used by CustomBrush to define procedural patterns.
type ColorFunc func(x, y float64) RGBA

// CustomBrush is a brush with a user-defined color function. It covers what
// SolidBrush and LinearGradientBrush cannot: procedural textures for noise
// sources, test fixtures, and host-supplied frame-clear fills.
//
// Note that CustomBrush values never compare equal for no-op detection;
// setting the same CustomBrush twice re-invalidates.
//
// Example:
//
//	// Subtle speckle for film grain
//	grain := frost.NewCustomBrush(func(x, y float64) frost.RGBA {
//	    if (int(x)*31+int(y)*17)%7 == 0 {
//	        return frost.RGBA{A: 0.04}
//	    }
//	    return frost.Transparent
//	})
type CustomBrush struct {
	// Func is the color function that determines the color at each point.
	Func ColorFunc

	// Name is an optional identifier for debugging and logging.
	Name string
}

// brushMarker implements the sealed Brush interface.
func (CustomBrush) brushMarker() {}

// ColorAt implements Brush. Returns the color from the custom function.
func (b CustomBrush) ColorAt(x, y float64) RGBA {
	if b.Func == nil {
		return Transparent
	}
	return b.Func(x, y)
}

// NewCustomBrush creates a CustomBrush from a color function.
func NewCustomBrush(fn ColorFunc) CustomBrush {
	return CustomBrush{Func: fn}
}

// WithName returns a new CustomBrush with the specified name.
func (b CustomBrush) WithName(name string) CustomBrush {
	return CustomBrush{
		Func: b.Func,
		Name: name,
	}
}

// Checkerboard creates a checkerboard pattern brush.
// size is the size of each square in pixels.
func Checkerboard(c0, c1 RGBA, size float64) CustomBrush {
	if size <= 0 {
		size = 1
	}

	return CustomBrush{
		Func: func(x, y float64) RGBA {
			xi := int(math.Floor(x / size))
			yi := int(math.Floor(y / size))
			if (xi+yi)%2 == 0 {
				return c0
			}
			return c1
		},
		Name: "checkerboard",
	}
}

// brushNoise samples a brush into a pixmap, memoizing the last size so a
// steady output resamples once, not per frame.
type brushNoise struct {
	b             Brush
	width, height int
	pm            *Pixmap
}

func (n *brushNoise) Noise(width, height int) *Pixmap {
	if n.pm != nil && n.width == width && n.height == height {
		return n.pm
	}
	pm := NewPixmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.SetPixel(x, y, n.b.ColorAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
	n.width, n.height = width, height
	n.pm = pm
	return pm
}

// BrushNoise adapts a brush into a NoiseSource by sampling it at pixel
// centers whenever the output changes size. Procedural brushes make cheap
// grain sources:
//
//	frost.New(target, output,
//	    frost.WithNoise(frost.BrushNoise(grain)))
func BrushNoise(b Brush) NoiseSource {
	return &brushNoise{b: b}
}
