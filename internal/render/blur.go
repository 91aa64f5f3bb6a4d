package render

import (
	"image"
	"math"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with standard
// deviation sigma and 2*ceil(3*sigma)+1 taps. sigma <= 0 yields the
// identity kernel.
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// Blur returns a Gaussian-blurred copy of src. All four channels are
// convolved independently, alpha included. Samples beyond the edge repeat
// the border pixel.
func Blur(src *image.NRGBA, sigma float64) *image.NRGBA {
	kernel := GaussianKernel(sigma)
	if len(kernel) == 1 {
		return Clone(src)
	}
	src = Clone(src)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	temp := make([]float32, w*h*4)
	blurRows(src.Pix, src.Stride, temp, w, h, kernel)

	dst := image.NewNRGBA(b)
	blurColumns(temp, dst.Pix, dst.Stride, w, h, kernel)
	return dst
}

// blurRows convolves each row of pix into temp (w*h*4 floats).
func blurRows(pix []uint8, stride int, temp []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				sx := clampInt(x+k-half, 0, w-1) * 4
				r += float32(row[sx+0]) * weight
				g += float32(row[sx+1]) * weight
				b += float32(row[sx+2]) * weight
				a += float32(row[sx+3]) * weight
			}
			i := (y*w + x) * 4
			temp[i+0], temp[i+1], temp[i+2], temp[i+3] = r, g, b, a
		}
	}
}

// blurColumns convolves each column of temp into pix.
func blurColumns(temp []float32, pix []uint8, stride int, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				i := (clampInt(y+k-half, 0, h-1)*w + x) * 4
				r += temp[i+0] * weight
				g += temp[i+1] * weight
				b += temp[i+2] * weight
				a += temp[i+3] * weight
			}
			d := x * 4
			row[d+0] = clampUint8(r)
			row[d+1] = clampUint8(g)
			row[d+2] = clampUint8(b)
			row[d+3] = clampUint8(a)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUint8(v float32) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 0xFF {
		return 0xFF
	}
	return uint8(v)
}
