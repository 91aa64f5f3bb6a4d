package render

import "image"

// GlassLayer returns a transparent layer holding the un-blurred glass
// panels, outermost drawn first so inner panels replace it.
func GlassLayer(d Design) *image.NRGBA {
	layer := NewCanvas(d.Size)
	for _, p := range d.GlassPanels() {
		FillRoundedRect(layer, p, d.Antialias)
	}
	return layer
}

// OverlayLayer returns a transparent layer holding the bracket glyphs and
// sparkle dots.
func OverlayLayer(d Design) *image.NRGBA {
	layer := NewCanvas(d.Size)
	for _, s := range d.BracketSegments() {
		StrokeSegment(layer, s, d.Antialias)
	}
	for _, c := range d.SparkleDots() {
		FillCircle(layer, c, d.Antialias)
	}
	return layer
}
