package frost

import "testing"

func TestEffectEqual(t *testing.T) {
	var mask fadeMaskCache
	brush := mask.get(100, 100, 0, 0, DirectionTopToBottom)

	tests := []struct {
		name string
		a, b Effect
		want bool
	}{
		{"nil both", nil, nil, true},
		{"nil one", nil, NewBlurEffect(4, 4), false},
		{"blur same", NewBlurEffect(4, 4), NewBlurEffect(4, 4), true},
		{"blur radius differs", NewBlurEffect(4, 4), NewBlurEffect(4, 5), false},
		{"blur vs shader", NewBlurEffect(4, 4), NewShaderEffect(brush), false},
		{"shader same brush", NewShaderEffect(brush), NewShaderEffect(brush), true},
		{"shader solid same", NewShaderEffect(Solid(Red)), NewShaderEffect(Solid(Red)), true},
		{"shader solid differs", NewShaderEffect(Solid(Red)), NewShaderEffect(Solid(Blue)), false},
		{
			"blend same",
			NewBlendEffect(NewBlurEffect(4, 4), NewShaderEffect(brush), BlendDestinationIn),
			NewBlendEffect(NewBlurEffect(4, 4), NewShaderEffect(brush), BlendDestinationIn),
			true,
		},
		{
			"blend mode differs",
			NewBlendEffect(NewBlurEffect(4, 4), NewShaderEffect(brush), BlendDestinationIn),
			NewBlendEffect(NewBlurEffect(4, 4), NewShaderEffect(brush), BlendSourceOver),
			false,
		},
		{
			"blend subtree differs",
			NewBlendEffect(NewBlurEffect(4, 4), NewShaderEffect(brush), BlendDestinationIn),
			NewBlendEffect(NewBlurEffect(8, 8), NewShaderEffect(brush), BlendDestinationIn),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("effectEqual = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectEqualRebuiltMaskBrush(t *testing.T) {
	var mask fadeMaskCache

	a := NewShaderEffect(mask.get(100, 100, 0, 0, DirectionTopToBottom))
	b := NewShaderEffect(mask.get(100, 100, 0, 0, DirectionLeftToRight))
	if effectEqual(a, b) {
		t.Error("mask rebuilt with a new direction must not compare equal")
	}
}

func TestBlurEffectCPUSpreadsImpulse(t *testing.T) {
	src := NewPixmap(21, 21)
	src.SetPixel(10, 10, White)

	out := applyEffect(src, NewBlurEffect(3, 3))

	if out == src {
		t.Fatal("applyEffect must not return the input buffer")
	}
	if src.GetPixel(9, 10).A != 0 {
		t.Error("input pixmap was modified")
	}
	center := out.GetPixel(10, 10).A
	neighbor := out.GetPixel(8, 10).A
	if center == 1 {
		t.Error("center was not attenuated by blur")
	}
	if neighbor == 0 {
		t.Error("no energy spread to neighbors")
	}
}

func TestShaderEffectFillsFromBrush(t *testing.T) {
	src := NewPixmap(8, 8)
	src.Clear(Red) // must be ignored

	out := applyEffect(src, NewShaderEffect(Solid(Blue)))

	got := out.GetPixel(4, 4)
	if got.B != 1 || got.R != 0 {
		t.Errorf("pixel = %+v, want solid blue regardless of input", got)
	}
}

func TestBlendEffectMasksBlur(t *testing.T) {
	src := NewPixmap(10, 10)
	src.Clear(White)

	var mask fadeMaskCache
	brush := mask.get(10, 10, 0, 0, DirectionTopToBottom)
	e := NewBlendEffect(NewBlurEffect(0, 0), NewShaderEffect(brush), BlendDestinationIn)

	out := applyEffect(src, e)

	top := out.GetPixel(5, 0).A
	bottom := out.GetPixel(5, 9).A
	if top < 0.9 {
		t.Errorf("alpha at masked-in end = %v, want ~1", top)
	}
	if bottom > top-0.5 {
		t.Errorf("alpha at faded end = %v, want well below %v", bottom, top)
	}
}

func TestApplyEffectNilPassesThrough(t *testing.T) {
	src := NewPixmap(4, 4)
	if out := applyEffect(src, nil); out != src {
		t.Error("nil effect should return the input unchanged")
	}
}
