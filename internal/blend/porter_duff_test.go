package blend

import "testing"

// TestMulDiv255 tests the multiply and divide by 255 helper function.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * zero", 255, 0, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mulDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestAddDiv255 tests the add with clamping helper function.
func TestAddDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero + zero", 0, 0, 0},
		{"zero + max", 0, 255, 255},
		{"max + max (clamped)", 255, 255, 255},
		{"100 + 100", 100, 100, 200},
		{"200 + 100 (clamped)", 200, 100, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addDiv255(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("addDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestBlendSourceOver tests the default alpha compositing mode.
func TestBlendSourceOver(t *testing.T) {
	tests := []struct {
		name           string
		sr, sg, sb, sa byte
		dr, dg, db, da byte
		wr, wg, wb, wa byte
	}{
		{"opaque red over opaque blue", 255, 0, 0, 255, 0, 0, 255, 255, 255, 0, 0, 255},
		{"transparent over opaque green", 0, 0, 0, 0, 0, 255, 0, 255, 0, 255, 0, 255},
		{"opaque over transparent", 255, 255, 255, 255, 0, 0, 0, 0, 255, 255, 255, 255},
		{"half-alpha gray over black", 128, 128, 128, 128, 0, 0, 0, 255, 128, 128, 128, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := blendSourceOver(tt.sr, tt.sg, tt.sb, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if r != tt.wr || g != tt.wg || b != tt.wb || a != tt.wa {
				t.Errorf("blendSourceOver() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wr, tt.wg, tt.wb, tt.wa)
			}
		})
	}
}

// TestBlendDestinationIn tests the D*Sa masking mode. The destination must
// survive fully under an opaque source, be cleared under a transparent
// source, and scale proportionally in between.
func TestBlendDestinationIn(t *testing.T) {
	tests := []struct {
		name           string
		sr, sg, sb, sa byte
		dr, dg, db, da byte
		wr, wg, wb, wa byte
	}{
		{"opaque mask keeps destination", 0, 0, 0, 255, 200, 100, 50, 255, 200, 100, 50, 255},
		{"transparent mask clears destination", 0, 0, 0, 0, 200, 100, 50, 255, 0, 0, 0, 0},
		{"half mask halves destination", 0, 0, 0, 128, 200, 100, 50, 255, 100, 50, 25, 128},
		{"mask color is irrelevant", 255, 255, 255, 255, 10, 20, 30, 255, 10, 20, 30, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := blendDestinationIn(tt.sr, tt.sg, tt.sb, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if r != tt.wr || g != tt.wg || b != tt.wb || a != tt.wa {
				t.Errorf("blendDestinationIn() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wr, tt.wg, tt.wb, tt.wa)
			}
		})
	}
}

// TestBlendDestinationOut tests the D*(1-Sa) mode.
func TestBlendDestinationOut(t *testing.T) {
	tests := []struct {
		name           string
		sa             byte
		dr, dg, db, da byte
		wr, wg, wb, wa byte
	}{
		{"opaque source clears", 255, 200, 100, 50, 255, 0, 0, 0, 0},
		{"transparent source keeps", 0, 200, 100, 50, 255, 200, 100, 50, 255},
		{"half source halves", 128, 200, 100, 50, 255, 100, 50, 25, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := blendDestinationOut(0, 0, 0, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if r != tt.wr || g != tt.wg || b != tt.wb || a != tt.wa {
				t.Errorf("blendDestinationOut() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wr, tt.wg, tt.wb, tt.wa)
			}
		})
	}
}

// TestGetBlendFunc verifies mode dispatch, including the unknown-mode default.
func TestGetBlendFunc(t *testing.T) {
	// DestinationIn and SourceOver behave differently for a transparent
	// source over an opaque destination; use that to tell them apart.
	const dr, dg, db, da = 200, 100, 50, 255

	_, _, _, a := GetBlendFunc(BlendDestinationIn)(0, 0, 0, 0, dr, dg, db, da)
	if a != 0 {
		t.Errorf("BlendDestinationIn alpha = %d, want 0", a)
	}

	_, _, _, a = GetBlendFunc(BlendSourceOver)(0, 0, 0, 0, dr, dg, db, da)
	if a != 255 {
		t.Errorf("BlendSourceOver alpha = %d, want 255", a)
	}

	_, _, _, a = GetBlendFunc(BlendMode(250))(0, 0, 0, 0, dr, dg, db, da)
	if a != 255 {
		t.Errorf("unknown mode alpha = %d, want 255 (source-over default)", a)
	}

	r, g, b, a := GetBlendFunc(BlendClear)(255, 255, 255, 255, dr, dg, db, da)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("BlendClear = (%d, %d, %d, %d), want zeros", r, g, b, a)
	}
}
