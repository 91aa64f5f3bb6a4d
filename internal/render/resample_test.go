package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func TestLanczos3(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{1, 0},
		{2, 0},
		{3, 0},
		{3.5, 0},
	}
	for _, tt := range tests {
		if got := lanczos3(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("lanczos3(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if got := lanczos3(1.5); got >= 0 {
		t.Errorf("lanczos3(1.5) = %v, want negative lobe", got)
	}
}

func TestResizeUniform(t *testing.T) {
	src := NewCanvas(512)
	c := color.NRGBA{R: 102, G: 126, B: 234, A: 0xFF}
	draw.Draw(src, src.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)

	for _, size := range []int{128, 64} {
		out := Resize(src, size)
		if b := out.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Fatalf("Resize(%d) bounds = %v", size, b)
		}
		for _, p := range []image.Point{{0, 0}, {size / 2, size / 2}, {size - 1, size - 1}} {
			if got := out.NRGBAAt(p.X, p.Y); !near(got, c, 1) {
				t.Errorf("Resize(%d) pixel %v = %v, want %v", size, p, got, c)
			}
		}
	}
}
