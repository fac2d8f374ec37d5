package frost

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// The Brush pattern follows vello/peniko Rust conventions, providing a
// type-safe way to represent different brush types.
//
// Supported brush types:
//   - SolidBrush: A single solid color
//   - LinearGradientBrush: A linear gradient between two points
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	// For gradient brushes, this samples the gradient at (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
// It implements the Brush interface and always returns the same color.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := frost.Solid(frost.Black)
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGB creates a SolidBrush from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b)}
}

// SolidRGBA creates a SolidBrush from RGBA components (0-1 range).
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: RGBA2(r, g, b, a)}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
// The RGB components are preserved.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{
		Color: RGBA{
			R: b.Color.R,
			G: b.Color.G,
			B: b.Color.B,
			A: alpha,
		},
	}
}
