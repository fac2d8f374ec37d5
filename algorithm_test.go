package frost

import "testing"

func TestGaussianBlurInPlace(t *testing.T) {
	g := NewGaussianBlur()
	if !g.CanModifyPixmap() {
		t.Error("CanModifyPixmap() = false, want true")
	}

	pm := NewPixmap(9, 9)
	pm.SetPixel(4, 4, White)

	out := g.Blur(pm, 1.5)
	if out != pm {
		t.Error("Blur returned a different pixmap, want in-place result")
	}

	center := pm.GetPixel(4, 4)
	if center.A >= 1 {
		t.Errorf("center alpha = %v, want < 1 (energy spread)", center.A)
	}
	neighbor := pm.GetPixel(3, 4)
	if neighbor.A == 0 {
		t.Error("neighbor alpha = 0, want energy from the impulse")
	}
}

func TestGaussianBlurZeroRadius(t *testing.T) {
	g := NewGaussianBlur()
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 1, Red)

	out := g.Blur(pm, 0)
	if out != pm {
		t.Error("Blur(radius=0) returned a different pixmap")
	}
	if got := pm.GetPixel(1, 1); got != Red {
		t.Errorf("GetPixel(1, 1) = %v, want %v (identity)", got, Red)
	}
}

func TestGaussianBlurNilPixmap(t *testing.T) {
	if out := NewGaussianBlur().Blur(nil, 4); out != nil {
		t.Errorf("Blur(nil) = %v, want nil", out)
	}
}

func TestBildBlurReturnsFreshBuffer(t *testing.T) {
	b := NewBildBlur()
	if b.CanModifyPixmap() {
		t.Error("CanModifyPixmap() = true, want false")
	}

	pm := NewPixmap(9, 9)
	pm.SetPixel(4, 4, White)

	out := b.Blur(pm, 1.5)
	if out == nil {
		t.Fatal("Blur returned nil")
	}
	if out == pm {
		t.Error("Blur returned the input pixmap, want a fresh buffer")
	}
	if out.Width() != 9 || out.Height() != 9 {
		t.Errorf("output size = %dx%d, want 9x9", out.Width(), out.Height())
	}

	// The input is untouched; the output carries the spread energy.
	if got := pm.GetPixel(4, 4); got != White {
		t.Errorf("input center = %v, want untouched %v", got, White)
	}
	if got := out.GetPixel(3, 4); got.A == 0 {
		t.Error("output neighbor alpha = 0, want energy from the impulse")
	}
}

func TestBildBlurZeroRadiusPassesThrough(t *testing.T) {
	b := NewBildBlur()
	pm := NewPixmap(4, 4)
	if out := b.Blur(pm, 0); out != pm {
		t.Error("Blur(radius=0) allocated a new pixmap, want pass-through")
	}
}
