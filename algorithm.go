package frost

// Algorithm is the pluggable blur filter the snapshot strategy delegates to.
// It only needs to blur a raster buffer; everything around it (capture,
// scaling, compositing, caching) is the controller's job.
type Algorithm interface {
	// Blur blurs src with the given radius and returns the result. When
	// CanModifyPixmap reports true the algorithm blurs src in place and
	// returns it; otherwise it returns a fresh pixmap whose ownership
	// transfers to the caller, which adopts it as the new snapshot buffer.
	Blur(src *Pixmap, radius float64) *Pixmap

	// CanModifyPixmap reports whether Blur mutates its input.
	CanModifyPixmap() bool

	// Destroy releases any resources held by the algorithm.
	// The algorithm must not be used afterwards.
	Destroy()
}
