package render

import (
	"image/color"
	"testing"
)

func TestGradientRowEndpoints(t *testing.T) {
	top := GradientRow(0, 512, GradientTop, GradientBottom)
	if top != (color.NRGBA{R: 102, G: 126, B: 234, A: 255}) {
		t.Errorf("row 0 = %v, want {102 126 234 255}", top)
	}

	// y/512 never reaches 1, so the last row stays one step short.
	bottom := GradientRow(511, 512, GradientTop, GradientBottom)
	if bottom != (color.NRGBA{R: 239, G: 146, B: 250, A: 255}) {
		t.Errorf("row 511 = %v, want {239 146 250 255}", bottom)
	}
}

func TestGradientRowMonotonic(t *testing.T) {
	prev := GradientRow(0, 512, GradientTop, GradientBottom)
	for y := 1; y < 512; y++ {
		cur := GradientRow(y, 512, GradientTop, GradientBottom)
		if cur.R < prev.R || cur.G < prev.G || cur.B < prev.B {
			t.Fatalf("row %d = %v decreases from row %d = %v", y, cur, y-1, prev)
		}
		prev = cur
	}
}

func TestGradientPaintsEveryPixel(t *testing.T) {
	blank := NewCanvas(64)
	out := Gradient(blank, GradientTop, GradientBottom)

	for y := 0; y < 64; y++ {
		want := GradientRow(y, 64, GradientTop, GradientBottom)
		for x := 0; x < 64; x++ {
			if got := out.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if blank.NRGBAAt(10, 10).A != 0 {
		t.Error("Gradient modified its input canvas")
	}
}
