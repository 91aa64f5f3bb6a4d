package render

import (
	"image"
	"image/draw"
)

// NewCanvas returns a fully transparent size x size canvas.
func NewCanvas(size int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

// Clone returns a copy of src with the same bounds.
func Clone(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
