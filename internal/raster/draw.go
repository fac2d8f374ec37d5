package raster

import (
	"image"
	"math"

	"github.com/gogpu/frost/internal/blend"
)

// DrawParams controls a transformed draw operation.
type DrawParams struct {
	// Transform maps source pixel coordinates to destination pixel
	// coordinates. The source occupies [0, w) x [0, h) in its own space.
	Transform Affine

	// Clip restricts the affected destination pixels. An empty rectangle
	// clips everything.
	Clip image.Rectangle

	// Opacity multiplies the source alpha. Zero means fully opaque
	// (the zero value draws normally).
	Opacity float64

	// Blend selects the compositing operator. The zero value is
	// source-over.
	Blend blend.BlendMode

	// Interp selects the sampling filter. The zero value is
	// nearest-neighbor.
	Interp InterpolationMode
}

// Draw composites src onto dst through an affine transform.
//
// Each destination pixel inside the transformed source bounds is mapped back
// to source space through the inverse transform and sampled there. Pixels
// whose inverse mapping falls outside the source are left untouched, so
// rotated draws have hard edges rather than feathered ones.
func Draw(dst, src *image.RGBA, p DrawParams) {
	srcW := src.Rect.Dx()
	srcH := src.Rect.Dy()
	if srcW <= 0 || srcH <= 0 {
		return
	}

	bounds := deviceBounds(p.Transform, float64(srcW), float64(srcH))
	bounds = bounds.Intersect(dst.Rect).Intersect(p.Clip)
	if bounds.Empty() {
		return
	}

	inv, ok := p.Transform.Invert()
	if !ok {
		return
	}

	opacity := p.Opacity
	if opacity <= 0 {
		opacity = 1
	}

	blendFn := blend.GetBlendFunc(p.Blend)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Map the pixel center back into source space.
			sx, sy := inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			if sx < 0 || sy < 0 || sx >= float64(srcW) || sy >= float64(srcH) {
				continue
			}

			sr, sg, sb, sa := Sample(src, sx, sy, p.Interp)
			if opacity < 1 {
				sa = uint8(math.Round(float64(sa) * opacity))
			}

			blendPixel(dst, x, y, sr, sg, sb, sa, blendFn)
		}
	}
}

// FillFunc fills the transformed rectangle [0, w) x [0, h) on dst, asking
// colorAt for the straight-alpha color at each covered point. colorAt
// receives untransformed rectangle-space coordinates, so gradient brushes
// evaluate in their own geometry regardless of the canvas transform.
func FillFunc(dst *image.RGBA, xf Affine, w, h float64, clip image.Rectangle, mode blend.BlendMode, colorAt func(x, y float64) (r, g, b, a uint8)) {
	if w <= 0 || h <= 0 {
		return
	}

	bounds := deviceBounds(xf, w, h)
	bounds = bounds.Intersect(dst.Rect).Intersect(clip)
	if bounds.Empty() {
		return
	}

	inv, ok := xf.Invert()
	if !ok {
		return
	}

	blendFn := blend.GetBlendFunc(mode)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ux, uy := inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			if ux < 0 || uy < 0 || ux >= w || uy >= h {
				continue
			}

			sr, sg, sb, sa := colorAt(ux, uy)
			blendPixel(dst, x, y, sr, sg, sb, sa, blendFn)
		}
	}
}

// Combine blends src onto dst pixel for pixel with no transform. Both images
// are aligned at their rectangle origins; the overlap is the smaller of the
// two sizes. This is the whole-buffer path used for mask application.
func Combine(dst, src *image.RGBA, mode blend.BlendMode) {
	w := min(dst.Rect.Dx(), src.Rect.Dx())
	h := min(dst.Rect.Dy(), src.Rect.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	blendFn := blend.GetBlendFunc(mode)

	for y := 0; y < h; y++ {
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		for x := 0; x < w; x++ {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			sr, sg, sb := premul(s[0], s[1], s[2], s[3])
			dr, dg, db := premul(d[0], d[1], d[2], d[3])
			r, g, b, a := blendFn(sr, sg, sb, s[3], dr, dg, db, d[3])
			d[0], d[1], d[2] = unpremul(r, g, b, a)
			d[3] = a

			di += 4
			si += 4
		}
	}
}

// blendPixel composites one straight-alpha source sample onto dst at (x, y).
// The blend functions work on premultiplied components, so the pixel is
// premultiplied going in and divided back out after.
func blendPixel(dst *image.RGBA, x, y int, sr, sg, sb, sa uint8, blendFn blend.BlendFunc) {
	i := dst.PixOffset(x, y)
	d := dst.Pix[i : i+4 : i+4]

	psr, psg, psb := premul(sr, sg, sb, sa)
	pdr, pdg, pdb := premul(d[0], d[1], d[2], d[3])
	r, g, b, a := blendFn(psr, psg, psb, sa, pdr, pdg, pdb, d[3])
	d[0], d[1], d[2] = unpremul(r, g, b, a)
	d[3] = a
}

// deviceBounds returns the integer bounding box of the rectangle
// [0, w) x [0, h) after transformation.
func deviceBounds(xf Affine, w, h float64) image.Rectangle {
	x0, y0 := xf.TransformPoint(0, 0)
	x1, y1 := xf.TransformPoint(w, 0)
	x2, y2 := xf.TransformPoint(0, h)
	x3, y3 := xf.TransformPoint(w, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

func premul(r, g, b, a uint8) (uint8, uint8, uint8) {
	if a == 255 {
		return r, g, b
	}
	if a == 0 {
		return 0, 0, 0
	}
	return mul255(r, a), mul255(g, a), mul255(b, a)
}

func unpremul(r, g, b, a uint8) (uint8, uint8, uint8) {
	if a == 255 || a == 0 {
		return r, g, b
	}
	return div255(r, a), div255(g, a), div255(b, a)
}

func mul255(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

func div255(v, a uint8) uint8 {
	x := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if x > 255 {
		x = 255
	}
	return uint8(x)
}
