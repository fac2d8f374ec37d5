package frost

import (
	"errors"

	"github.com/gogpu/frost/internal/blend"
	"github.com/gogpu/frost/internal/filter"
	"github.com/gogpu/frost/internal/raster"
)

// Effect describes a retained image filter attached to a Node.
// This is a sealed interface - only types in this package implement it.
//
// Effects form small graphs: leaf effects (BlurEffect, ShaderEffect) produce
// pixels, and BlendEffect composes two sub-effects with a Porter-Duff mode.
// The blur controller builds its per-frame graph as
//
//	NewBlendEffect(NewBlurEffect(r, r), NewShaderEffect(mask), BlendDestinationIn)
//
// Evaluation tries the registered GPU accelerator first and falls back to the
// CPU rasterizer when none is available or the accelerator declines.
type Effect interface {
	// effectMarker is an unexported method that seals this interface.
	effectMarker()
}

// BlurEffect applies a Gaussian blur with independent horizontal and
// vertical radii, in pixels of the surface it is attached to.
type BlurEffect struct {
	RadiusX float64
	RadiusY float64
}

// NewBlurEffect creates a blur effect with the given radii.
func NewBlurEffect(radiusX, radiusY float64) *BlurEffect {
	return &BlurEffect{RadiusX: radiusX, RadiusY: radiusY}
}

func (*BlurEffect) effectMarker() {}

// ShaderEffect generates pixels from a brush, ignoring its input. It is used
// as the source side of a BlendEffect, typically carrying a fade-mask
// gradient.
type ShaderEffect struct {
	Brush Brush
}

// NewShaderEffect creates a shader effect that samples the given brush.
func NewShaderEffect(b Brush) *ShaderEffect {
	return &ShaderEffect{Brush: b}
}

func (*ShaderEffect) effectMarker() {}

// BlendEffect composes two sub-effects with a Porter-Duff blend mode.
// Dst is evaluated first, then Src is blended over it.
type BlendEffect struct {
	Dst  Effect
	Src  Effect
	Mode BlendMode
}

// NewBlendEffect creates a blend effect combining dst and src with mode.
func NewBlendEffect(dst, src Effect, mode BlendMode) *BlendEffect {
	return &BlendEffect{Dst: dst, Src: src, Mode: mode}
}

func (*BlendEffect) effectMarker() {}

// effectEqual reports whether two effect graphs are equivalent. Nodes use it
// to skip re-evaluation when a controller rebuilds an identical graph.
//
// Shader brushes compare by identity, not content: the gradient caches return
// a stable pointer for an unchanged key, so pointer equality is exactly
// "the mask did not change".
func effectEqual(a, b Effect) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch ea := a.(type) {
	case *BlurEffect:
		eb, ok := b.(*BlurEffect)
		return ok && *ea == *eb
	case *ShaderEffect:
		eb, ok := b.(*ShaderEffect)
		return ok && sameBrush(ea.Brush, eb.Brush)
	case *BlendEffect:
		eb, ok := b.(*BlendEffect)
		return ok && ea.Mode == eb.Mode &&
			effectEqual(ea.Dst, eb.Dst) && effectEqual(ea.Src, eb.Src)
	}
	return false
}

// sameBrush compares brushes without relying on interface equality, which
// would panic for brush types carrying a func field. Gradient brushes compare
// by pointer, solid brushes by value; anything else is treated as changed.
func sameBrush(a, b Brush) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch ba := a.(type) {
	case *LinearGradientBrush:
		bb, ok := b.(*LinearGradientBrush)
		return ok && ba == bb
	case SolidBrush:
		bb, ok := b.(SolidBrush)
		return ok && ba == bb
	}
	return false
}

// applyEffect evaluates e over src and returns the filtered pixels. src is
// not modified. A nil effect returns src unchanged.
//
// When a GPU accelerator is registered and claims support for the graph, it
// is tried first; ErrFallbackToCPU and evaluation errors route to the CPU
// path, the latter with a warning.
func applyEffect(src *Pixmap, e Effect) *Pixmap {
	if e == nil || src == nil {
		return src
	}
	if a := Accelerator(); a != nil && a.CanAccelerate(effectOp(e)) {
		dst := NewPixmap(src.Width(), src.Height())
		err := a.ApplyEffect(renderTarget(dst), renderTarget(src), e)
		if err == nil {
			return dst
		}
		if errors.Is(err, ErrFallbackToCPU) {
			Logger().Debug("accelerator declined effect graph",
				"accelerator", a.Name())
		} else {
			Logger().Warn("GPU effect evaluation failed, using CPU",
				"accelerator", a.Name(), "error", err)
		}
	}
	return evalEffectCPU(src, e)
}

// effectOp maps an effect graph to the capability bit used for the
// accelerator fast check.
func effectOp(e Effect) AcceleratedOp {
	switch e.(type) {
	case *BlurEffect:
		return AccelBlur
	case *ShaderEffect:
		return AccelGradientMask
	default:
		return AccelEffectGraph
	}
}

// renderTarget exposes a pixmap's buffer to the accelerator.
func renderTarget(p *Pixmap) GPURenderTarget {
	return GPURenderTarget{
		Data:   p.Data(),
		Width:  p.Width(),
		Height: p.Height(),
		Stride: p.Width() * 4,
	}
}

// evalEffectCPU evaluates an effect graph on the CPU. The input pixmap is
// never written; every path returns a fresh buffer.
func evalEffectCPU(src *Pixmap, e Effect) *Pixmap {
	switch ef := e.(type) {
	case *BlurEffect:
		out := src.Clone()
		filter.Blur(out.Data(), out.Width(), out.Height(), ef.RadiusX, ef.RadiusY)
		return out
	case *ShaderEffect:
		out := NewPixmap(src.Width(), src.Height())
		fillBrush(out, ef.Brush)
		return out
	case *BlendEffect:
		d := evalEffectCPU(src, ef.Dst)
		s := evalEffectCPU(src, ef.Src)
		raster.Combine(d.RGBA(), s.RGBA(), ef.Mode)
		return d
	}
	return src.Clone()
}

// fillBrush rasterizes a brush over the whole pixmap, replacing its contents.
func fillBrush(dst *Pixmap, b Brush) {
	if b == nil {
		return
	}
	rgba := dst.RGBA()
	raster.FillFunc(rgba, raster.Identity(), float64(dst.Width()), float64(dst.Height()),
		rgba.Rect, blend.BlendSource, func(x, y float64) (uint8, uint8, uint8, uint8) {
			return colorBytes(b.ColorAt(x, y))
		})
}
