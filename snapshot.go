package frost

// SnapshotController is the software strategy: each frame it captures the
// content behind the output region into a downscaled buffer, blurs the
// buffer with a pluggable Algorithm, and composites the result stretched
// back to the output's full size.
//
// The capture happens in a pre-draw hook so the snapshot reflects the
// current frame's content before the output itself is drawn. Create with
// NewSnapshotController, or through New which picks the strategy.
type SnapshotController struct {
	target Target
	output Output

	tracker locationTracker
	scaler  sizeScaler

	algorithm  Algorithm
	radius     float64
	fadeDir    GradientDirection
	frameClear Drawable
	noise      NoiseSource
	overlay    overlayState

	buffer  *Pixmap
	capture *Canvas

	enabled     bool
	initialized bool
	destroyed   bool

	unsubscribe func()
}

// NewSnapshotController creates a snapshot controller for the given regions.
// The controller subscribes its pre-draw hook immediately and captures the
// first frame, unless the output's current size is unusable (zero area, or
// a scale factor of exactly 1), in which case initialization is deferred
// until UpdateSize reports a usable size.
func NewSnapshotController(target Target, output Output, opts ...Option) *SnapshotController {
	o := buildOptions(opts)
	algorithm := o.algorithm
	if algorithm == nil {
		algorithm = NewGaussianBlur()
	}
	c := &SnapshotController{
		target:     target,
		output:     output,
		scaler:     newSizeScaler(o.scaleFactor),
		algorithm:  algorithm,
		radius:     o.blurRadius,
		frameClear: o.frameClear,
		noise:      o.noise,
		enabled:    true,
	}
	c.overlay.solid = o.overlayColor

	w, h := output.Size()
	c.init(w, h)
	return c
}

func (c *SnapshotController) init(measuredWidth, measuredHeight int) {
	c.SetBlurAutoUpdate(true)
	if c.scaler.isZeroSized(measuredWidth, measuredHeight) {
		// Initialized later, when the host reports a usable size.
		return
	}

	scaled := c.scaler.scale(measuredWidth, measuredHeight)
	if c.buffer == nil || c.buffer.Width() != scaled.width || c.buffer.Height() != scaled.height {
		c.buffer = NewPixmap(scaled.width, scaled.height)
		c.capture = newCaptureCanvas(c.buffer)
		Logger().Debug("allocated snapshot buffer",
			"width", scaled.width, "height", scaled.height,
			"measuredWidth", measuredWidth, "measuredHeight", measuredHeight)
	}
	c.initialized = true
	// The pre-draw hook updates the blur anyway, but only on the next
	// frame; capturing here keeps resize results visible immediately.
	c.updateBlur()
}

// updateBlur captures the content behind the output region into the scaled
// buffer and blurs it. Runs from the pre-draw hook.
func (c *SnapshotController) updateBlur() {
	if !c.enabled || !c.initialized {
		return
	}

	if c.frameClear == nil {
		c.buffer.Clear(Transparent)
	} else {
		c.frameClear.Draw(c.capture)
	}

	c.capture.Push()
	c.setupCaptureTransform()
	if err := c.target.DrawContent(c.capture); err != nil {
		// Capture can fail on exotic backing resources. Keep whatever was
		// drawn and try again next frame.
		Logger().Error("snapshot capture failed", "error", err)
	}
	c.capture.Pop()

	c.blurAndSave()
}

// setupCaptureTransform maps the target's coordinate space onto the scaled
// buffer so that the content directly behind the output region lands at the
// buffer origin. Width and height are scaled independently to tolerate
// rounding in the buffer size.
func (c *SnapshotController) setupCaptureTransform() {
	c.tracker.refresh(c.target, c.output)
	measuredWidth, measuredHeight := c.output.Size()

	axisScaleW := float64(measuredWidth) / float64(c.buffer.Width())
	axisScaleH := float64(measuredHeight) / float64(c.buffer.Height())

	left, top := c.tracker.offset()
	c.capture.Translate(-float64(left)/axisScaleW, -float64(top)/axisScaleH)
	c.capture.Scale(1/axisScaleW, 1/axisScaleH)
}

func (c *SnapshotController) blurAndSave() {
	out := c.algorithm.Blur(c.buffer, c.radius)
	if out == nil {
		return
	}
	c.buffer = out
	if !c.algorithm.CanModifyPixmap() {
		c.capture.rebind(c.buffer)
	}
}

// Draw implements Controller. It scale-draws the blurred buffer up to the
// output region's current size, clipped to its bounds, then composites
// noise and the overlay.
func (c *SnapshotController) Draw(dst *Canvas) bool {
	if !c.enabled || !c.initialized {
		return false
	}
	if dst == nil || dst.capture {
		// Never draw into a capture canvas: a blurred region must not
		// appear in another region's snapshot, or its own.
		return false
	}

	width, height := c.output.Size()
	scaleW := float64(width) / float64(c.buffer.Width())
	scaleH := float64(height) / float64(c.buffer.Height())

	dst.Push()
	dst.ClipRect(0, 0, float64(width), float64(height))

	dst.Push()
	dst.Scale(scaleW, scaleH)
	dst.DrawPixmap(c.buffer, 0, 0)
	dst.Pop() // restore scale so noise and overlay draw at full resolution

	c.drawNoise(dst, width, height)
	c.overlay.draw(dst, width, height)

	dst.Pop()
	return true
}

func (c *SnapshotController) drawNoise(dst *Canvas, width, height int) {
	if c.noise == nil {
		return
	}
	if pm := c.noise.Noise(width, height); pm != nil {
		dst.DrawPixmap(pm, 0, 0)
	}
}

// UpdateSize implements Controller.
func (c *SnapshotController) UpdateSize() {
	w, h := c.output.Size()
	c.init(w, h)
}

// Destroy implements Controller. The pre-draw hook is detached before any
// resource is released, so no callback can observe destroyed state.
func (c *SnapshotController) Destroy() {
	if c.destroyed {
		return
	}
	c.SetBlurAutoUpdate(false)
	c.destroyed = true
	c.initialized = false
	c.algorithm.Destroy()
	c.buffer = nil
	c.capture = nil
}

// SetBlurEnabled implements Controller. Disabling also detaches the
// pre-draw hook; enabling reattaches it.
func (c *SnapshotController) SetBlurEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	c.SetBlurAutoUpdate(enabled)
	c.output.Invalidate()
}

// SetBlurAutoUpdate implements Controller.
func (c *SnapshotController) SetBlurAutoUpdate(enabled bool) {
	if enabled == (c.unsubscribe != nil) {
		return
	}
	if !enabled {
		c.unsubscribe()
		c.unsubscribe = nil
		return
	}
	if c.destroyed {
		return
	}
	c.unsubscribe = c.output.OnPreDraw(c.updateBlur)
}

// SetFrameClearDrawable implements Controller.
func (c *SnapshotController) SetFrameClearDrawable(d Drawable) {
	c.frameClear = d
}

// SetBlurRadius implements Controller. Takes effect on the next frame.
func (c *SnapshotController) SetBlurRadius(radius float64) {
	if c.radius == radius {
		return
	}
	c.radius = radius
}

// SetOverlayColor implements Controller.
func (c *SnapshotController) SetOverlayColor(col ARGB) {
	if c.overlay.setSolid(col) {
		c.output.Invalidate()
	}
}

// SetBlurGradient implements Controller. The snapshot strategy records the
// direction but does not mask its output; directional fading is an
// effect-graph feature.
func (c *SnapshotController) SetBlurGradient(dir GradientDirection) {
	c.fadeDir = dir
}

// SetOverlayGradient implements Controller.
func (c *SnapshotController) SetOverlayGradient(start, end ARGB, dir GradientDirection) {
	if c.overlay.setGradient(start, end, dir) {
		c.output.Invalidate()
	}
}
