package frost

import "github.com/gogpu/frost/internal/filter"

// GaussianBlur is the default blur algorithm: a separable two-pass Gaussian
// convolution running on the CPU. It blurs in place, so the snapshot buffer
// is reused across frames without reallocation.
type GaussianBlur struct{}

// NewGaussianBlur creates the default Gaussian blur algorithm.
func NewGaussianBlur() *GaussianBlur {
	return &GaussianBlur{}
}

// Blur implements Algorithm. Radius <= 0 returns src unchanged.
func (g *GaussianBlur) Blur(src *Pixmap, radius float64) *Pixmap {
	if src == nil || radius <= 0 {
		return src
	}
	filter.Blur(src.Data(), src.Width(), src.Height(), radius, radius)
	return src
}

// CanModifyPixmap implements Algorithm. Always true: the convolution writes
// back into the source buffer.
func (g *GaussianBlur) CanModifyPixmap() bool {
	return true
}

// Destroy implements Algorithm. The Gaussian algorithm holds no resources
// beyond pooled scratch buffers shared process-wide, so this is a no-op.
func (g *GaussianBlur) Destroy() {}
