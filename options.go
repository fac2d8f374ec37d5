package frost

// Option configures a controller during creation.
//
// Example:
//
//	// Defaults: Gaussian blur, scale factor 6, radius 16
//	ctrl := frost.New(target, output)
//
//	// Stronger downscale and a custom algorithm
//	ctrl := frost.New(target, output,
//	    frost.WithScaleFactor(8),
//	    frost.WithAlgorithm(frost.NewBildBlur()))
type Option func(*controllerOptions)

// controllerOptions holds optional configuration for controller creation.
type controllerOptions struct {
	scaleFactor  float64
	blurRadius   float64
	algorithm    Algorithm
	noise        NoiseSource
	frameClear   Drawable
	overlayColor ARGB
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		scaleFactor: DefaultScaleFactor,
		blurRadius:  DefaultBlurRadius,
		algorithm:   nil, // Will be set to GaussianBlur if nil
	}
}

// WithScaleFactor sets the downscale factor applied to the snapshot buffer
// before blurring. Larger factors give a stronger apparent blur and cheaper
// frames at the expense of precision. The effect-graph strategy uses the
// factor to amplify the blur radius instead, since its backend downsamples
// internally.
//
// A factor of exactly 1 keeps the snapshot controller uninitialized until a
// different factor or size arrives, the same deferral as a zero-sized region.
func WithScaleFactor(factor float64) Option {
	return func(o *controllerOptions) {
		o.scaleFactor = factor
	}
}

// WithBlurRadius sets the initial blur radius. Equivalent to calling
// SetBlurRadius on the controller after creation.
func WithBlurRadius(radius float64) Option {
	return func(o *controllerOptions) {
		o.blurRadius = radius
	}
}

// WithAlgorithm sets the blur algorithm used by the snapshot strategy.
// The effect-graph strategy evaluates blurs through its accelerator and
// ignores this option.
//
// Example:
//
//	ctrl := frost.NewSnapshotController(target, output,
//	    frost.WithAlgorithm(frost.NewBildBlur()))
func WithAlgorithm(a Algorithm) Option {
	return func(o *controllerOptions) {
		o.algorithm = a
	}
}

// WithNoise sets a noise source composited over the blurred content, which
// masks banding artifacts on shallow gradients.
func WithNoise(src NoiseSource) Option {
	return func(o *controllerOptions) {
		o.noise = src
	}
}

// WithFrameClearDrawable sets the drawable used to pre-fill the buffer
// before each capture, instead of a transparent clear. Useful when the
// target's own background does not cover the captured area. Equivalent to
// SetFrameClearDrawable.
func WithFrameClearDrawable(d Drawable) Option {
	return func(o *controllerOptions) {
		o.frameClear = d
	}
}

// WithOverlayColor sets the initial solid overlay color drawn on top of the
// blurred content. Equivalent to SetOverlayColor.
func WithOverlayColor(c ARGB) Option {
	return func(o *controllerOptions) {
		o.overlayColor = c
	}
}
