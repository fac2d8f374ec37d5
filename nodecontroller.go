package frost

// NodeController is the effect-graph strategy: it keeps a persistent Node
// that re-records the target's content each frame and carries a composed
// blur+mask effect, evaluated by the registered accelerator (or the CPU
// evaluator when it declines).
//
// The node is sized to the target region, not the output region, so
// transform animations on the output do not clip the captured content. The
// trade-off is that a rotated or scaled output can reveal content beyond
// its visible bounds.
//
// The scale factor does not downscale any buffer here; it only amplifies
// the requested blur radius, since effect evaluation downsamples internally
// in proportion to the radius.
type NodeController struct {
	target Target
	output Output

	tracker locationTracker
	node    *Node

	scaleFactor float64
	radius      float64
	fadeDir     GradientDirection
	frameClear  Drawable
	noise       NoiseSource
	overlay     overlayState
	maskCache   fadeMaskCache

	enabled   bool
	destroyed bool

	// reapplyEveryFrame works around accelerators whose retained effect
	// result does not reflect transform-only changes.
	reapplyEveryFrame bool

	unsubscribe func()
}

// NewNodeController creates an effect-graph controller for the given
// regions. Any WithAlgorithm option is ignored; blurring goes through the
// effect graph.
func NewNodeController(target Target, output Output, opts ...Option) *NodeController {
	o := buildOptions(opts)
	c := &NodeController{
		target:      target,
		output:      output,
		scaleFactor: o.scaleFactor,
		radius:      o.blurRadius,
		frameClear:  o.frameClear,
		noise:       o.noise,
		enabled:     true,
	}
	c.overlay.solid = o.overlayColor
	c.node = NewNode(target.Size())

	if ra, ok := Accelerator().(EffectReapplyAware); ok && ra.RequiresEffectReapply() {
		c.reapplyEveryFrame = true
		Logger().Debug("accelerator requires per-frame effect reapply")
	}

	c.SetBlurAutoUpdate(true)
	return c
}

// preDraw tracks the output region's movement between draws, during
// scrolling and animations.
func (c *NodeController) preDraw() {
	if !c.enabled || c.destroyed {
		return
	}
	c.updateNodeProperties()
}

// updateNodeProperties positions the node so its content lands correctly in
// the output region's local space: translation undoes the target-to-output
// offset, and the pivot sits on the output center so host-driven rotation
// and scale compensation happen about the visible middle.
func (c *NodeController) updateNodeProperties() {
	c.tracker.refresh(c.target, c.output)
	left, top := c.tracker.offset()
	translationX := -float64(left)
	translationY := -float64(top)

	width, height := c.output.Size()
	c.node.SetPivot(float64(width)/2-translationX, float64(height)/2-translationY)
	c.node.SetTranslation(translationX, translationY)

	if c.reapplyEveryFrame {
		c.applyBlurEffect()
		c.node.ReapplyEffect()
	}
}

// applyBlurEffect composes and attaches the current effect graph: blur at
// the amplified radius, masked by the directional fade gradient when one is
// configured and the output has positive area.
func (c *NodeController) applyBlurEffect() {
	amplified := c.radius * c.scaleFactor
	var e Effect = NewBlurEffect(amplified, amplified)

	width, height := c.output.Size()
	if c.fadeDir != DirectionNone && width > 0 && height > 0 {
		left, top := c.tracker.offset()
		if mask := c.maskCache.get(width, height, left, top, c.fadeDir); mask != nil {
			e = NewBlendEffect(e, NewShaderEffect(mask), BlendDestinationIn)
		}
	}
	c.node.SetEffect(e)
}

// recordSnapshot re-records the node's content for this frame.
func (c *NodeController) recordSnapshot() {
	c.node.Resize(c.target.Size())

	canvas := c.node.BeginRecording()
	if c.frameClear != nil {
		c.frameClear.Draw(canvas)
	}
	if err := c.target.DrawContent(canvas); err != nil {
		// Keep the partial recording and try again next frame.
		Logger().Error("node content capture failed", "error", err)
	}
	c.applyBlurEffect()
	c.node.EndRecording()
}

// Draw implements Controller. It re-records the node, then composites its
// filtered output clipped to the output region, followed by noise and the
// overlay.
func (c *NodeController) Draw(dst *Canvas) bool {
	if !c.enabled || c.destroyed {
		return false
	}
	if dst == nil || dst.capture {
		// Never draw into a capture canvas; see SnapshotController.Draw.
		return false
	}

	c.updateNodeProperties()
	c.recordSnapshot()

	width, height := c.output.Size()
	dst.Push()
	dst.ClipRect(0, 0, float64(width), float64(height))
	dst.DrawNode(c.node)
	c.drawNoise(dst, width, height)
	c.overlay.draw(dst, width, height)
	dst.Pop()
	return true
}

func (c *NodeController) drawNoise(dst *Canvas, width, height int) {
	if c.noise == nil {
		return
	}
	if pm := c.noise.Noise(width, height); pm != nil {
		dst.DrawPixmap(pm, 0, 0)
	}
}

// UpdateSize implements Controller. The node is re-sized from the target
// region on every draw, so there is nothing to re-derive here.
func (c *NodeController) UpdateSize() {}

// Destroy implements Controller. The pre-draw hook is detached before the
// node is released.
func (c *NodeController) Destroy() {
	if c.destroyed {
		return
	}
	c.SetBlurAutoUpdate(false)
	c.destroyed = true
	c.node = nil
}

// SetBlurEnabled implements Controller.
func (c *NodeController) SetBlurEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	c.output.Invalidate()
}

// SetBlurAutoUpdate implements Controller.
func (c *NodeController) SetBlurAutoUpdate(enabled bool) {
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
	c.unsubscribe = c.output.OnPreDraw(c.preDraw)
}

// SetFrameClearDrawable implements Controller.
func (c *NodeController) SetFrameClearDrawable(d Drawable) {
	c.frameClear = d
}

// SetBlurRadius implements Controller. The composed effect is reapplied
// immediately.
func (c *NodeController) SetBlurRadius(radius float64) {
	if c.destroyed || c.radius == radius {
		return
	}
	c.radius = radius
	c.applyBlurEffect()
}

// SetOverlayColor implements Controller.
func (c *NodeController) SetOverlayColor(col ARGB) {
	if c.overlay.setSolid(col) {
		c.output.Invalidate()
	}
}

// SetBlurGradient implements Controller. The composed effect is reapplied
// immediately.
func (c *NodeController) SetBlurGradient(dir GradientDirection) {
	if c.destroyed || c.fadeDir == dir {
		return
	}
	c.fadeDir = dir
	c.applyBlurEffect()
}

// SetOverlayGradient implements Controller.
func (c *NodeController) SetOverlayGradient(start, end ARGB, dir GradientDirection) {
	if c.overlay.setGradient(start, end, dir) {
		c.output.Invalidate()
	}
}

// SetRotation counter-rotates the node so the blurred content stays
// visually fixed while the host rotates the output region. The angle is in
// radians.
func (c *NodeController) SetRotation(radians float64) {
	if c.destroyed {
		return
	}
	c.node.SetRotation(-radians)
}

// SetScaleX counter-scales the node horizontally while the host scales the
// output region.
func (c *NodeController) SetScaleX(scale float64) {
	if c.destroyed || scale == 0 {
		return
	}
	c.node.SetScaleX(1 / scale)
}

// SetScaleY counter-scales the node vertically while the host scales the
// output region.
func (c *NodeController) SetScaleY(scale float64) {
	if c.destroyed || scale == 0 {
		return
	}
	c.node.SetScaleY(1 / scale)
}
