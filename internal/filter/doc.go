// Package filter implements the separable Gaussian convolution used by the
// snapshot blur strategy.
//
// The two-pass algorithm processes rows and columns independently, achieving
// O(w*h*(rx+ry)) complexity instead of O(w*h*rx*ry). Kernels are normalized
// 1D Gaussians with 3-sigma support, cached per radius since a controller
// blurs at the same radius frame after frame.
package filter
