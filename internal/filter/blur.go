package filter

import "sync"

// Blur applies a separable Gaussian blur to an RGBA pixel buffer in place.
// data holds width*height pixels, 4 bytes each, row-major. Edges are
// clamped (edge extension). A radius <= 0 on an axis skips that pass.
func Blur(data []uint8, width, height int, radiusX, radiusY float64) {
	if width <= 0 || height <= 0 || len(data) < width*height*4 {
		return
	}
	if radiusX <= 0 && radiusY <= 0 {
		return
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	// Pass 1: horizontal, data -> temp.
	if radiusX > 0 {
		blurHorizontal(data, temp, width, height, CachedGaussianKernel(radiusX))
	} else {
		copyToTemp(data, temp, width, height)
	}

	// Pass 2: vertical, temp -> data. Safe in place: the horizontal pass
	// has already consumed every source pixel.
	if radiusY > 0 {
		blurVertical(temp, data, width, height, CachedGaussianKernel(radiusY))
	} else {
		copyFromTemp(temp, data, width, height)
	}
}

// blurHorizontal convolves each row with the 1D kernel, reading bytes and
// accumulating into the float32 temp buffer.
func blurHorizontal(src []uint8, temp []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k := range kernel {
				kx := x + k - half
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}

				i := (row + kx) * 4
				w := kernel[k]
				r += float32(src[i+0]) * w
				g += float32(src[i+1]) * w
				b += float32(src[i+2]) * w
				a += float32(src[i+3]) * w
			}

			t := (row + x) * 4
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
			temp[t+3] = a
		}
	}
}

// blurVertical convolves each column with the 1D kernel, reading the float32
// temp buffer and writing rounded bytes to dst.
func blurVertical(temp []float32, dst []uint8, width, height int, kernel []float32) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k := range kernel {
				ky := y + k - half
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}

				i := (ky*width + x) * 4
				w := kernel[k]
				r += temp[i+0] * w
				g += temp[i+1] * w
				b += temp[i+2] * w
				a += temp[i+3] * w
			}

			i := (y*width + x) * 4
			dst[i+0] = clampUint8(r)
			dst[i+1] = clampUint8(g)
			dst[i+2] = clampUint8(b)
			dst[i+3] = clampUint8(a)
		}
	}
}

func copyToTemp(src []uint8, temp []float32, width, height int) {
	n := width * height * 4
	for i := 0; i < n; i++ {
		temp[i] = float32(src[i])
	}
}

func copyFromTemp(temp []float32, dst []uint8, width, height int) {
	n := width * height * 4
	for i := 0; i < n; i++ {
		dst[i] = clampUint8(temp[i])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur passes. Snapshot buffers are small
// (measured size divided by the scale factor), so the pool mostly hands the
// same buffer back every frame.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer retrieves a temp buffer with at least width*height*4
// elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers.
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
