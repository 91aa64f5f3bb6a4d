package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	if k := GaussianKernel(0); len(k) != 1 || k[0] != 1 {
		t.Errorf("GaussianKernel(0) = %v, want [1]", k)
	}

	k := GaussianKernel(8)
	if len(k) != 49 {
		t.Fatalf("len(GaussianKernel(8)) = %d, want 49", len(k))
	}
	var sum float32
	for _, v := range k {
		sum += v
	}
	if math.Abs(float64(sum)-1) > 0.001 {
		t.Errorf("kernel sum = %v, want ~1", sum)
	}
	for i := 0; i < len(k)/2; i++ {
		if j := len(k) - 1 - i; math.Abs(float64(k[i]-k[j])) > 1e-6 {
			t.Errorf("kernel[%d]=%v != kernel[%d]=%v", i, k[i], j, k[j])
		}
	}
	if k[24] <= k[23] {
		t.Errorf("kernel peak %v not above neighbour %v", k[24], k[23])
	}
}

func TestBlurUniformStaysUniform(t *testing.T) {
	src := NewCanvas(40)
	c := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 80}
	draw.Draw(src, src.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)

	out := Blur(src, 8)
	for _, p := range []image.Point{{0, 0}, {20, 20}, {39, 39}} {
		if got := out.NRGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestBlurSpreadsAlpha(t *testing.T) {
	src := NewCanvas(64)
	FillRoundedRect(src, RoundedRect{Bounds: image.Rect(24, 24, 40, 40), Fill: white}, false)

	out := Blur(src, 8)
	if a := out.NRGBAAt(32, 32).A; a == 0 || a == 0xFF {
		t.Errorf("centre alpha = %d, want softened", a)
	}
	if a := out.NRGBAAt(18, 32).A; a == 0 {
		t.Error("alpha did not spread outside the square")
	}
	if src.NRGBAAt(18, 32).A != 0 {
		t.Error("Blur modified its input")
	}
}

func TestBlurGreysGlassEdges(t *testing.T) {
	// Transparent pixels are black with zero alpha and are averaged in
	// like any other colour.
	out := Blur(GlassLayer(DefaultDesign()), glassBlurSigma)

	centre := out.NRGBAAt(256, 256)
	if centre.R != 0xFF || centre.G != 0xFF || centre.B != 0xFF {
		t.Errorf("centre = %v, want white", centre)
	}
	edge := out.NRGBAAt(80, 256)
	if edge.R != edge.G || edge.G != edge.B {
		t.Errorf("edge = %v, want neutral grey", edge)
	}
	if edge.R == 0 || edge.R >= 200 {
		t.Errorf("edge = %v, want darkened towards black", edge)
	}
	if edge.A == 0 || edge.A >= glassAlpha {
		t.Errorf("edge alpha = %d, want between 0 and %d", edge.A, glassAlpha)
	}
}
