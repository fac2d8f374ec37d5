package frost

// Region is a rectangular screen area reported by the host.
//
// Implementations are owned by the caller; controllers hold non-owning
// references and re-read sizes and locations every frame rather than caching
// them, since independent scrolling and transforms move regions between
// frames.
type Region interface {
	// Size returns the measured width and height in pixels.
	Size() (w, h int)

	// ScreenLocation returns the region's origin in the containing
	// coordinate space.
	ScreenLocation() (x, y int)
}

// Target is the content region being blurred (the "behind" layer).
type Target interface {
	Region

	// DrawContent draws the target's content, and everything behind it,
	// into the canvas under the canvas's current transform. An error means
	// the capture failed (for example an incompatible backing resource);
	// controllers log it and proceed with whatever was drawn.
	DrawContent(c *Canvas) error
}

// Output is the region where the blurred result is displayed.
type Output interface {
	Region

	// Invalidate requests that the host redraw the output region.
	Invalidate()

	// OnPreDraw subscribes fn to run before each frame's draw pass and
	// returns a cancel function that removes the subscription. The hook
	// updates the blur source before the same pass renders the
	// destination, so capture-then-draw ordering within a frame holds.
	OnPreDraw(fn func()) (cancel func())
}

// Drawable is anything that can draw itself into a canvas. Controllers use
// it for the optional frame-clear pre-fill applied before capturing content
// from targets that have no opaque background of their own.
type Drawable interface {
	Draw(c *Canvas)
}

// DrawableFunc adapts a plain function to the Drawable interface.
type DrawableFunc func(c *Canvas)

// Draw implements Drawable.
func (f DrawableFunc) Draw(c *Canvas) {
	f(c)
}

// NoiseSource supplies the dither texture composited over the blurred
// result. Generation is up to the host; a typical implementation returns a
// tiled pre-rendered noise pixmap.
type NoiseSource interface {
	Noise(w, h int) *Pixmap
}
