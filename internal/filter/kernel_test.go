package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelIdentity(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.5} {
		kernel := GaussianKernel(radius)
		if len(kernel) != 1 || kernel[0] != 1.0 {
			t.Errorf("GaussianKernel(%v) = %v, want [1.0]", radius, kernel)
		}
	}
}

func TestGaussianKernelSize(t *testing.T) {
	tests := []struct {
		radius float64
		want   int
	}{
		{1, 7},    // 2*ceil(3)+1
		{2, 13},   // 2*ceil(6)+1
		{2.5, 17}, // 2*ceil(7.5)+1
		{10, 61},  // 2*ceil(30)+1
	}

	for _, tt := range tests {
		if got := len(GaussianKernel(tt.radius)); got != tt.want {
			t.Errorf("len(GaussianKernel(%v)) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 3, 7.25} {
		kernel := GaussianKernel(radius)
		sum := float64(0)
		for _, v := range kernel {
			sum += float64(v)
		}
		if math.Abs(sum-1.0) > 1e-4 {
			t.Errorf("GaussianKernel(%v) sum = %v, want 1.0", radius, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel := GaussianKernel(3)
	n := len(kernel)
	for i := 0; i < n/2; i++ {
		if kernel[i] != kernel[n-1-i] {
			t.Errorf("kernel[%d] = %v, kernel[%d] = %v, want equal", i, kernel[i], n-1-i, kernel[n-1-i])
		}
	}

	// The center carries the largest weight.
	center := kernel[n/2]
	for i, v := range kernel {
		if i != n/2 && v > center {
			t.Errorf("kernel[%d] = %v exceeds center %v", i, v, center)
		}
	}
}

func TestCachedGaussianKernelReturnsSameSlice(t *testing.T) {
	a := CachedGaussianKernel(4.5)
	b := CachedGaussianKernel(4.5)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel returned different slices for the same radius")
	}

	c := CachedGaussianKernel(5.0)
	if &a[0] == &c[0] {
		t.Error("CachedGaussianKernel returned the same slice for different radii")
	}
}

func TestKernelCacheEviction(t *testing.T) {
	c := newKernelCache(4)
	for i := 1; i <= 8; i++ {
		c.get(float64(i))
	}
	if len(c.cache) > 4 {
		t.Errorf("cache length = %d, want <= 4 after eviction", len(c.cache))
	}

	// The cache still serves correct kernels after eviction.
	k := c.get(2)
	if len(k) != 13 {
		t.Errorf("len(get(2)) = %d, want 13", len(k))
	}
}
