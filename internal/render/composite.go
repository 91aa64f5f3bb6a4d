package render

import (
	"image"
	"image/draw"
)

// Composite returns dst with src laid on top using the "over" operator:
// each channel becomes src*srcAlpha + dst*(1-srcAlpha), alpha likewise.
// Neither input is modified. src is aligned at dst's origin.
func Composite(dst, src *image.NRGBA) *image.NRGBA {
	out := Clone(dst)
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Over)
	return out
}
