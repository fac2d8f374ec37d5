package frost

import "github.com/anthonynsimon/bild/blur"

// BildBlur applies Gaussian blur through the bild image-processing library.
// bild always allocates a fresh output image, so this algorithm reports
// CanModifyPixmap false and the controller adopts the returned buffer each
// frame. Useful when comparing blur quality against the in-place default, or
// when the host already depends on bild.
type BildBlur struct{}

// NewBildBlur creates a bild-backed blur algorithm.
func NewBildBlur() *BildBlur {
	return &BildBlur{}
}

// Blur implements Algorithm. Radius <= 0 returns src unchanged.
func (b *BildBlur) Blur(src *Pixmap, radius float64) *Pixmap {
	if src == nil || radius <= 0 {
		return src
	}
	return FromImage(blur.Gaussian(src.RGBA(), radius))
}

// CanModifyPixmap implements Algorithm. Always false: bild writes its result
// into a new image.
func (b *BildBlur) CanModifyPixmap() bool {
	return false
}

// Destroy implements Algorithm. No resources to release.
func (b *BildBlur) Destroy() {}
