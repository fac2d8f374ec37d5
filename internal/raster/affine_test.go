package raster

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func floatNear(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestIdentity(t *testing.T) {
	id := Identity()
	x, y := id.TransformPoint(3.5, -2.25)
	if !floatNear(x, 3.5) || !floatNear(y, -2.25) {
		t.Errorf("Identity().TransformPoint(3.5, -2.25) = (%v, %v), want (3.5, -2.25)", x, y)
	}
}

func TestTranslate(t *testing.T) {
	tr := Translate(10, -5)
	x, y := tr.TransformPoint(1, 2)
	if !floatNear(x, 11) || !floatNear(y, -3) {
		t.Errorf("Translate(10, -5).TransformPoint(1, 2) = (%v, %v), want (11, -3)", x, y)
	}
}

func TestScale(t *testing.T) {
	s := Scale(2, 0.5)
	x, y := s.TransformPoint(4, 4)
	if !floatNear(x, 8) || !floatNear(y, 2) {
		t.Errorf("Scale(2, 0.5).TransformPoint(4, 4) = (%v, %v), want (8, 2)", x, y)
	}
}

func TestRotate(t *testing.T) {
	r := Rotate(math.Pi / 2)
	x, y := r.TransformPoint(1, 0)
	if !floatNear(x, 0) || !floatNear(y, 1) {
		t.Errorf("Rotate(pi/2).TransformPoint(1, 0) = (%v, %v), want (0, 1)", x, y)
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Translate-then-scale must differ from scale-then-translate.
	ts := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := ts.TransformPoint(1, 1)
	if !floatNear(x, 12) || !floatNear(y, 2) {
		t.Errorf("translate*scale point = (%v, %v), want (12, 2)", x, y)
	}

	st := Scale(2, 2).Multiply(Translate(10, 0))
	x, y = st.TransformPoint(1, 1)
	if !floatNear(x, 22) || !floatNear(y, 2) {
		t.Errorf("scale*translate point = (%v, %v), want (22, 2)", x, y)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		xf   Affine
	}{
		{"identity", Identity()},
		{"translate", Translate(7, -3)},
		{"scale", Scale(2, 4)},
		{"rotate", Rotate(0.7)},
		{"composite", Translate(5, 5).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))},
		{"rotate at", RotateAt(1.1, 20, 30)},
		{"scale at", ScaleAt(3, 3, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.xf.Invert()
			if !ok {
				t.Fatal("Invert() not ok for invertible matrix")
			}
			x, y := tt.xf.TransformPoint(3, 4)
			bx, by := inv.TransformPoint(x, y)
			if !floatNear(bx, 3) || !floatNear(by, 4) {
				t.Errorf("round trip = (%v, %v), want (3, 4)", bx, by)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	singular := Scale(0, 1)
	if _, ok := singular.Invert(); ok {
		t.Error("Invert() ok for singular matrix, want not ok")
	}
}

func TestRotateAtFixedPoint(t *testing.T) {
	r := RotateAt(math.Pi/3, 8, 9)
	x, y := r.TransformPoint(8, 9)
	if !floatNear(x, 8) || !floatNear(y, 9) {
		t.Errorf("RotateAt pivot moved to (%v, %v), want (8, 9)", x, y)
	}
}

func TestScaleAtFixedPoint(t *testing.T) {
	s := ScaleAt(4, 4, 16, 16)
	x, y := s.TransformPoint(16, 16)
	if !floatNear(x, 16) || !floatNear(y, 16) {
		t.Errorf("ScaleAt pivot moved to (%v, %v), want (16, 16)", x, y)
	}

	// A point 1px right of the pivot lands 4px right of it.
	x, y = s.TransformPoint(17, 16)
	if !floatNear(x, 20) || !floatNear(y, 16) {
		t.Errorf("ScaleAt(4).TransformPoint(17, 16) = (%v, %v), want (20, 16)", x, y)
	}
}
