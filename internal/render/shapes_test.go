package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestFillRoundedRectReplacesPixels(t *testing.T) {
	layer := NewCanvas(100)
	blue := color.NRGBA{B: 0xFF, A: 0xFF}
	draw.Draw(layer, layer.Bounds(), &image.Uniform{C: blue}, image.Point{}, draw.Src)

	fill := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 40}
	FillRoundedRect(layer, RoundedRect{Bounds: image.Rect(10, 10, 91, 91), Radius: 20, Fill: fill}, false)

	if got := layer.NRGBAAt(50, 50); got != fill {
		t.Errorf("interior = %v, want %v (replaced, not blended)", got, fill)
	}
	if got := layer.NRGBAAt(5, 50); got != blue {
		t.Errorf("outside = %v, want untouched %v", got, blue)
	}
	if got := layer.NRGBAAt(10, 10); got != blue {
		t.Errorf("rounded corner = %v, want untouched %v", got, blue)
	}
	if got := layer.NRGBAAt(50, 10); got != fill {
		t.Errorf("top edge midpoint = %v, want %v", got, fill)
	}
}

func TestFillCircle(t *testing.T) {
	layer := NewCanvas(64)
	FillCircle(layer, Circle{Center: image.Pt(32, 32), Radius: 8, Fill: white}, false)

	tests := []struct {
		name  string
		p     image.Point
		inked bool
	}{
		{"centre", image.Pt(32, 32), true},
		{"inside", image.Pt(36, 30), true},
		{"beyond radius", image.Pt(32+10, 32), false},
		{"diagonal corner", image.Pt(32+8, 32+8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layer.NRGBAAt(tt.p.X, tt.p.Y)
			if tt.inked && got != white {
				t.Errorf("pixel %v = %v, want %v", tt.p, got, white)
			}
			if !tt.inked && got.A != 0 {
				t.Errorf("pixel %v = %v, want transparent", tt.p, got)
			}
		})
	}
}

func TestFillCircleAntialiasedEdge(t *testing.T) {
	layer := NewCanvas(64)
	ink := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 150}
	FillCircle(layer, Circle{Center: image.Pt(32, 32), Radius: 8, Fill: ink}, true)

	partial := 0
	for _, a := range alphas(layer) {
		if a > 0 && a < ink.A {
			partial++
		}
	}
	if partial == 0 {
		t.Error("antialiased circle has no partially covered pixels")
	}
}

func TestFillCircleAliasedHasHardEdges(t *testing.T) {
	layer := NewCanvas(64)
	ink := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 150}
	FillCircle(layer, Circle{Center: image.Pt(32, 32), Radius: 8, Fill: ink}, false)

	for i, a := range alphas(layer) {
		if a != 0 && a != ink.A {
			t.Fatalf("pixel %d alpha = %d, want 0 or %d", i, a, ink.A)
		}
	}
}

func TestStrokeSegmentButtEnds(t *testing.T) {
	layer := NewCanvas(100)
	ink := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 200}
	StrokeSegment(layer, Segment{From: image.Pt(20, 50), To: image.Pt(80, 50), Width: 12, Ink: ink}, false)

	tests := []struct {
		name  string
		p     image.Point
		inked bool
	}{
		{"on the line", image.Pt(50, 50), true},
		{"within half width", image.Pt(50, 47), true},
		{"within half width below", image.Pt(50, 53), true},
		{"outside width", image.Pt(50, 40), false},
		{"before start", image.Pt(10, 50), false},
		{"after end", image.Pt(90, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layer.NRGBAAt(tt.p.X, tt.p.Y)
			if tt.inked && got != ink {
				t.Errorf("pixel %v = %v, want %v", tt.p, got, ink)
			}
			if !tt.inked && got.A != 0 {
				t.Errorf("pixel %v = %v, want transparent", tt.p, got)
			}
		})
	}
}

func TestMix(t *testing.T) {
	got := mix(color.NRGBA{}, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 200}, 128)
	if got.R != 0xFF || got.G != 0xFF || got.B != 0xFF {
		t.Errorf("mix colour = %v, want white", got)
	}
	if got.A != 100 {
		t.Errorf("mix alpha = %d, want 100", got.A)
	}

	if got := mix(color.NRGBA{}, color.NRGBA{}, 128); got != (color.NRGBA{}) {
		t.Errorf("mix of transparent = %v, want zero", got)
	}
}

func alphas(img *image.NRGBA) []uint8 {
	out := make([]uint8, 0, len(img.Pix)/4)
	for i := 3; i < len(img.Pix); i += 4 {
		out = append(out, img.Pix[i])
	}
	return out
}
