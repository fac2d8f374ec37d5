package frost

// Default tuning parameters applied by New when not overridden.
const (
	// DefaultBlurRadius is the blur radius used when none is configured.
	DefaultBlurRadius = 16.0

	// DefaultScaleFactor is the snapshot downscale factor used when none is
	// configured.
	DefaultScaleFactor = 6.0
)

// Controller drives the frosted-glass pipeline for one output region: it
// captures the content behind the region, blurs it, and composites the
// result with the configured masks and overlays.
//
// The contract is identical across both backend strategies. Controllers are
// single-goroutine objects: every method, including the pre-draw hook they
// subscribe, must run on the goroutine that owns the frame loop.
type Controller interface {
	// Draw composites the blurred content into dst and reports whether it
	// drew anything. False — because the controller is disabled, not yet
	// initialized, or dst is a capture canvas — tells the caller to fall
	// back to its default drawing path.
	Draw(dst *Canvas) bool

	// UpdateSize re-derives internal buffers from the output region's
	// current measured size. Call it when the region is resized.
	UpdateSize()

	// Destroy detaches the pre-draw hook and releases owned resources.
	// Idempotent; a destroyed controller draws nothing.
	Destroy()

	// SetBlurEnabled toggles whether blur is computed and drawn at all.
	SetBlurEnabled(enabled bool)

	// SetBlurAutoUpdate toggles the per-frame pre-draw refresh subscription.
	SetBlurAutoUpdate(enabled bool)

	// SetFrameClearDrawable sets or clears (nil) the drawable used to
	// pre-fill the capture buffer each frame.
	SetFrameClearDrawable(d Drawable)

	// SetBlurRadius sets the blur strength. The snapshot strategy picks it
	// up on the next frame; the effect-graph strategy reapplies immediately.
	SetBlurRadius(radius float64)

	// SetOverlayColor sets the solid overlay drawn over the blurred content
	// and clears any overlay gradient.
	SetOverlayColor(c ARGB)

	// SetBlurGradient sets the direction along which the blur fades out,
	// or DirectionNone for uniform blur.
	SetBlurGradient(dir GradientDirection)

	// SetOverlayGradient sets the overlay gradient. The solid overlay color
	// is not cleared, but the gradient supersedes it while either gradient
	// color is non-transparent.
	SetOverlayGradient(start, end ARGB, dir GradientDirection)
}

// New creates a controller for the given target and output regions,
// selecting the backend strategy once at construction: the effect-graph
// strategy when a registered accelerator can evaluate composed effect
// graphs, otherwise the snapshot strategy. The choice never changes at
// runtime.
//
// Use NewSnapshotController or NewNodeController to pick a strategy
// explicitly.
func New(target Target, output Output, opts ...Option) Controller {
	if a := Accelerator(); a != nil && a.CanAccelerate(AccelEffectGraph) {
		return NewNodeController(target, output, opts...)
	}
	return NewSnapshotController(target, output, opts...)
}

func buildOptions(opts []Option) controllerOptions {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
