package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestComposite(t *testing.T) {
	black := color.NRGBA{A: 0xFF}
	tests := []struct {
		name string
		top  color.NRGBA
		want color.NRGBA
	}{
		{"transparent top", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF}, black},
		{"opaque top", color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF}, color.NRGBA{R: 10, G: 20, B: 30, A: 0xFF}},
		{"half white", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 128}, color.NRGBA{R: 128, G: 128, B: 128, A: 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bottom := NewCanvas(4)
			draw.Draw(bottom, bottom.Bounds(), &image.Uniform{C: black}, image.Point{}, draw.Src)
			top := NewCanvas(4)
			draw.Draw(top, top.Bounds(), &image.Uniform{C: tt.top}, image.Point{}, draw.Src)

			got := Composite(bottom, top).NRGBAAt(1, 1)
			if !near(got, tt.want, 1) {
				t.Errorf("Composite = %v, want %v", got, tt.want)
			}
			if bottom.NRGBAAt(1, 1) != black {
				t.Error("Composite modified its destination")
			}
		})
	}
}

func TestCompositeOntoTransparent(t *testing.T) {
	top := NewCanvas(2)
	c := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 150}
	top.SetNRGBA(0, 0, c)

	got := Composite(NewCanvas(2), top).NRGBAAt(0, 0)
	if !near(got, c, 1) {
		t.Errorf("Composite onto transparent = %v, want %v", got, c)
	}
}

func near(a, b color.NRGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v <= tol && v >= -tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
