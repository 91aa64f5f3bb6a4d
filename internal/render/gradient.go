package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Gradient returns a copy of c with every row painted an opaque colour
// interpolated from `from` (row 0) towards `to`.
//
// Row y uses the fraction y/height, so the last row stops one step short
// of `to`. The artwork was tuned against that output.
func Gradient(c *image.NRGBA, from, to color.NRGBA) *image.NRGBA {
	out := Clone(c)
	b := out.Bounds()
	height := b.Dy()
	for y := 0; y < height; y++ {
		row := image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1)
		draw.Draw(out, row, &image.Uniform{C: GradientRow(y, height, from, to)}, image.Point{}, draw.Src)
	}
	return out
}

// GradientRow returns the colour of row y of a gradient with the given height.
// Channels are truncated, not rounded.
func GradientRow(y, height int, from, to color.NRGBA) color.NRGBA {
	t := float64(y) / float64(height)
	return color.NRGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: 0xFF,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + float64(int(b)-int(a))*t)
}
