package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Lanczos is a Lanczos-3 resampling kernel.
var Lanczos = &xdraw.Kernel{Support: 3, At: lanczos3}

func lanczos3(t float64) float64 {
	if t == 0 {
		return 1
	}
	if t >= 3 {
		return 0
	}
	pt := math.Pi * t
	return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
}

// Resize returns src resampled to a size x size image with Lanczos-3.
func Resize(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	Lanczos.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
