package frost

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/frost/internal/blend"
	"github.com/gogpu/frost/internal/raster"
)

// InterpolationMode defines how pixel sampling is performed when drawing
// scaled or transformed pixmaps.
type InterpolationMode = raster.InterpolationMode

// Pixmap interpolation modes.
const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest = raster.InterpNearest

	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	// Good balance between quality and performance; the default for drawing.
	InterpBilinear = raster.InterpBilinear
)

// BlendMode defines how source pixels are combined with destination pixels.
type BlendMode = blend.BlendMode

// Porter-Duff blend modes. BlendSourceOver is the zero value and the default
// everywhere a BlendMode is optional.
const (
	BlendSourceOver      = blend.BlendSourceOver
	BlendClear           = blend.BlendClear
	BlendSource          = blend.BlendSource
	BlendDestination     = blend.BlendDestination
	BlendDestinationOver = blend.BlendDestinationOver
	BlendSourceIn        = blend.BlendSourceIn
	BlendDestinationIn   = blend.BlendDestinationIn
	BlendSourceOut       = blend.BlendSourceOut
	BlendDestinationOut  = blend.BlendDestinationOut
)

// Canvas is an immediate-mode drawing surface over a Pixmap.
//
// It carries a transformation matrix and a rectangular clip, both saved and
// restored by Push/Pop. Drawing goes through the current transform and is
// limited to the clip. All coordinates are in user space unless noted.
type Canvas struct {
	pixmap *Pixmap
	rgba   *image.RGBA // shared view of pixmap data
	matrix Matrix
	clip   image.Rectangle // device space
	stack  []canvasState

	// capture marks canvases used to record content for a snapshot or node.
	// Blur controllers refuse to draw into capture canvases, breaking the
	// recursion that would otherwise occur when a target contains the
	// controller's own output.
	capture bool
}

type canvasState struct {
	matrix Matrix
	clip   image.Rectangle
}

// NewCanvas creates a canvas that draws into the given pixmap.
// The transform starts at identity and the clip covers the whole pixmap.
func NewCanvas(p *Pixmap) *Canvas {
	return &Canvas{
		pixmap: p,
		rgba:   p.RGBA(),
		matrix: Identity(),
		clip:   p.Bounds(),
		stack:  make([]canvasState, 0, 8),
	}
}

// newCaptureCanvas creates a canvas marked as a content-capture target.
func newCaptureCanvas(p *Pixmap) *Canvas {
	c := NewCanvas(p)
	c.capture = true
	return c
}

// rebind points the canvas at a different pixmap, resetting the transform,
// clip, and state stack. The capture marker is preserved. Used when a blur
// algorithm hands back a replacement buffer.
func (c *Canvas) rebind(p *Pixmap) {
	c.pixmap = p
	c.rgba = p.RGBA()
	c.matrix = Identity()
	c.clip = p.Bounds()
	c.stack = c.stack[:0]
}

// Pixmap returns the pixmap this canvas draws into.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixmap.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixmap.height
}

// Push saves the current state (transform and clip).
func (c *Canvas) Push() {
	c.stack = append(c.stack, canvasState{matrix: c.matrix, clip: c.clip})
}

// Pop restores the last saved state.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = s.matrix
	c.clip = s.clip
}

// Identity resets the transformation matrix to identity.
func (c *Canvas) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the transformation matrix.
func (c *Canvas) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Canvas) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Canvas) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Canvas) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Transform multiplies the current transformation matrix by the given matrix.
// The transformation is applied in the order: current * m.
func (c *Canvas) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// SetTransform replaces the current transformation matrix with the given matrix.
// Unlike Transform, this completely replaces the matrix rather than multiplying.
func (c *Canvas) SetTransform(m Matrix) {
	c.matrix = m
}

// GetTransform returns a copy of the current transformation matrix.
func (c *Canvas) GetTransform() Matrix {
	return c.matrix
}

// TransformPoint transforms a point by the current matrix.
func (c *Canvas) TransformPoint(x, y float64) (float64, float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// ClipRect intersects the clip with the given rectangle.
//
// The rectangle is transformed into device space first; under rotation the
// clip becomes the bounding box of the transformed corners, since clipping
// is always axis-aligned in device space.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	p1 := c.matrix.TransformPoint(Pt(x, y))
	p2 := c.matrix.TransformPoint(Pt(x+w, y))
	p3 := c.matrix.TransformPoint(Pt(x, y+h))
	p4 := c.matrix.TransformPoint(Pt(x+w, y+h))

	minX := math.Min(math.Min(p1.X, p2.X), math.Min(p3.X, p4.X))
	minY := math.Min(math.Min(p1.Y, p2.Y), math.Min(p3.Y, p4.Y))
	maxX := math.Max(math.Max(p1.X, p2.X), math.Max(p3.X, p4.X))
	maxY := math.Max(math.Max(p1.Y, p2.Y), math.Max(p3.Y, p4.Y))

	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
	c.clip = c.clip.Intersect(r)
}

// ResetClip removes all clipping, restoring the full canvas as drawable.
func (c *Canvas) ResetClip() {
	c.clip = c.pixmap.Bounds()
}

// ClipBounds returns the current clip rectangle in device space.
func (c *Canvas) ClipBounds() image.Rectangle {
	return c.clip
}

// Clear fills the entire pixmap with transparent black.
// Clear ignores the current transform and clip.
func (c *Canvas) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire pixmap with a color.
// Like Clear, it ignores the current transform and clip.
func (c *Canvas) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// FillRect fills a rectangle with the given brush using source-over blending.
// The brush is sampled in user space, so gradients keep their geometry
// regardless of the canvas transform.
func (c *Canvas) FillRect(x, y, w, h float64, b Brush) {
	if w <= 0 || h <= 0 || b == nil {
		return
	}

	xf := affineOf(c.matrix.Multiply(Translate(x, y)))
	raster.FillFunc(c.rgba, xf, w, h, c.clip, blend.BlendSourceOver,
		func(ux, uy float64) (uint8, uint8, uint8, uint8) {
			return colorBytes(b.ColorAt(x+ux, y+uy))
		})
}

// DrawPixmapOptions specifies parameters for drawing a pixmap.
type DrawPixmapOptions struct {
	// X, Y specify the top-left corner where the pixmap will be drawn.
	X, Y float64

	// DstWidth and DstHeight specify the dimensions to scale the pixmap to.
	// If zero, the source dimensions are used (possibly from SrcRect).
	DstWidth  float64
	DstHeight float64

	// SrcRect defines the source rectangle to sample from.
	// If nil, the entire source pixmap is used.
	SrcRect *image.Rectangle

	// Interpolation specifies the interpolation mode for sampling.
	// Default is InterpBilinear.
	Interpolation InterpolationMode

	// Opacity controls the overall transparency of the source (0.0 to 1.0).
	// Default is 1.0.
	Opacity float64

	// BlendMode specifies how to blend source and destination pixels.
	// Default is BlendSourceOver.
	BlendMode BlendMode
}

// DrawPixmap draws a pixmap at the specified position.
// The current transformation matrix is applied to the position and size.
func (c *Canvas) DrawPixmap(src *Pixmap, x, y float64) {
	c.DrawPixmapEx(src, DrawPixmapOptions{
		X:             x,
		Y:             y,
		Interpolation: InterpBilinear,
		Opacity:       1.0,
	})
}

// DrawPixmapEx draws a pixmap with advanced options.
// The current transformation matrix is applied to the position and size.
func (c *Canvas) DrawPixmapEx(src *Pixmap, opts DrawPixmapOptions) {
	if src == nil || src.width <= 0 || src.height <= 0 {
		return
	}

	if opts.Interpolation == 0 {
		opts.Interpolation = InterpBilinear
	}
	if opts.Opacity == 0 {
		opts.Opacity = 1.0
	}

	srcImg := src.RGBA()
	if opts.SrcRect != nil {
		sub := opts.SrcRect.Intersect(srcImg.Rect)
		if sub.Empty() {
			return
		}
		srcImg = srcImg.SubImage(sub).(*image.RGBA)
	}

	dstWidth := opts.DstWidth
	dstHeight := opts.DstHeight
	if dstWidth == 0 {
		dstWidth = float64(srcImg.Rect.Dx())
	}
	if dstHeight == 0 {
		dstHeight = float64(srcImg.Rect.Dy())
	}

	if c.tryScaledBlit(srcImg, opts, dstWidth, dstHeight) {
		return
	}

	// General path: per-pixel inverse transform through the full matrix.
	full := c.matrix.
		Multiply(Translate(opts.X, opts.Y)).
		Multiply(Scale(dstWidth/float64(srcImg.Rect.Dx()), dstHeight/float64(srcImg.Rect.Dy())))

	raster.Draw(c.rgba, srcImg, raster.DrawParams{
		Transform: affineOf(full),
		Clip:      c.clip,
		Opacity:   opts.Opacity,
		Blend:     opts.BlendMode,
		Interp:    opts.Interpolation,
	})
}

// tryScaledBlit draws via the golang.org/x/image scalers when the combined
// transform is an axis-aligned scale and the blend reduces to a plain copy.
// Reports whether the draw was handled.
func (c *Canvas) tryScaledBlit(srcImg *image.RGBA, opts DrawPixmapOptions, dstWidth, dstHeight float64) bool {
	m := c.matrix
	if m.B != 0 || m.D != 0 || m.A <= 0 || m.E <= 0 {
		return false
	}
	if opts.Opacity < 1 {
		return false
	}

	// Source-over on a fully opaque source is a plain copy. True source
	// blending of translucent pixels needs the exact per-pixel path, since
	// the scalers assume premultiplied alpha.
	switch opts.BlendMode {
	case BlendSource:
	case BlendSourceOver:
		if !fullyOpaque(srcImg) {
			return false
		}
	default:
		return false
	}

	x0, y0 := c.TransformPoint(opts.X, opts.Y)
	x1, y1 := c.TransformPoint(opts.X+dstWidth, opts.Y+dstHeight)
	dr := image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
	if dr.Empty() {
		return true
	}

	// The scalers clip against dst bounds, so the canvas clip is applied by
	// handing them a sub-view. The mapping stays anchored to dr.
	view := c.rgba.SubImage(c.clip).(*image.RGBA)

	var scaler xdraw.Scaler
	if opts.Interpolation == InterpNearest {
		scaler = xdraw.NearestNeighbor
	} else {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(view, dr, srcImg, srcImg.Rect, xdraw.Src, nil)
	return true
}

// fullyOpaque reports whether every pixel in the image has alpha 255.
func fullyOpaque(img *image.RGBA) bool {
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		i := img.PixOffset(img.Rect.Min.X, y) + 3
		for x := 0; x < img.Rect.Dx(); x++ {
			if img.Pix[i] != 255 {
				return false
			}
			i += 4
		}
	}
	return true
}

// affineOf converts a Matrix to the internal raster representation.
func affineOf(m Matrix) raster.Affine {
	return raster.NewAffine(m.A, m.B, m.C, m.D, m.E, m.F)
}

// colorBytes converts an RGBA color to straight-alpha bytes.
func colorBytes(c RGBA) (uint8, uint8, uint8, uint8) {
	return uint8(clamp255(c.R * 255)),
		uint8(clamp255(c.G * 255)),
		uint8(clamp255(c.B * 255)),
		uint8(clamp255(c.A * 255))
}
