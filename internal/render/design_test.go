package render

import (
	"image"
	"strings"
	"testing"
)

func TestDefaultDesignValid(t *testing.T) {
	d := DefaultDesign()
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if d.Size != 512 {
		t.Errorf("Size = %d, want 512", d.Size)
	}
}

func TestGlassPanels(t *testing.T) {
	panels := DefaultDesign().GlassPanels()
	if len(panels) != 3 {
		t.Fatalf("got %d panels, want 3", len(panels))
	}

	tests := []struct {
		bounds image.Rectangle
		radius int
		alpha  uint8
	}{
		{image.Rect(80, 80, 433, 433), 40, 80},
		{image.Rect(95, 95, 418, 418), 35, 60},
		{image.Rect(110, 110, 403, 403), 30, 40},
	}
	for i, tt := range tests {
		p := panels[i]
		if p.Bounds != tt.bounds {
			t.Errorf("panel %d bounds = %v, want %v", i, p.Bounds, tt.bounds)
		}
		if p.Radius != tt.radius {
			t.Errorf("panel %d radius = %d, want %d", i, p.Radius, tt.radius)
		}
		if p.Fill.A != tt.alpha || p.Fill.R != 0xFF || p.Fill.G != 0xFF || p.Fill.B != 0xFF {
			t.Errorf("panel %d fill = %v, want white alpha %d", i, p.Fill, tt.alpha)
		}
	}
}

func TestBracketSegments(t *testing.T) {
	segs := DefaultDesign().BracketSegments()
	if len(segs) != 8 {
		t.Fatalf("got %d segments, want 8", len(segs))
	}

	left := []image.Point{{196, 226}, {176, 226}, {166, 256}, {176, 286}, {196, 286}}
	right := []image.Point{{316, 226}, {336, 226}, {346, 256}, {336, 286}, {316, 286}}
	for i := 0; i < 4; i++ {
		if segs[i].From != left[i] || segs[i].To != left[i+1] {
			t.Errorf("left segment %d = %v->%v, want %v->%v", i, segs[i].From, segs[i].To, left[i], left[i+1])
		}
		r := segs[4+i]
		if r.From != right[i] || r.To != right[i+1] {
			t.Errorf("right segment %d = %v->%v, want %v->%v", i, r.From, r.To, right[i], right[i+1])
		}
	}
	for i, s := range segs {
		if s.Width != 12 || s.Ink.A != 200 {
			t.Errorf("segment %d width=%d alpha=%d, want 12 and 200", i, s.Width, s.Ink.A)
		}
	}
}

func TestShapesInsideCanvas(t *testing.T) {
	d := DefaultDesign()
	canvas := d.Canvas()
	for _, c := range d.SparkleDots() {
		if !c.Bounds().In(canvas) {
			t.Errorf("sparkle at %v radius %d leaves canvas: %v", c.Center, c.Radius, c.Bounds())
		}
	}
	for _, s := range d.BracketSegments() {
		if !s.Bounds().In(canvas) {
			t.Errorf("segment %v->%v leaves canvas: %v", s.From, s.To, s.Bounds())
		}
	}
	if !d.Extent().In(canvas) {
		t.Errorf("extent %v not inside %v", d.Extent(), canvas)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Design)
		wantSub string
	}{
		{"zero size", func(d *Design) { d.Size = 0 }, "canvas size"},
		{"alpha underflow", func(d *Design) { d.GlassAlphaStep = 50 }, "glass alpha"},
		{"radius underflow", func(d *Design) { d.GlassRadiusStep = 30 }, "glass radius"},
		{"negative sigma", func(d *Design) { d.BlurSigma = -1 }, "blur sigma"},
		{"sparkle off canvas", func(d *Design) {
			d.Sparkles = append(d.Sparkles, Sparkle{X: 508, Y: 20, Radius: 9})
		}, "outside"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDesign()
			tt.mutate(&d)
			err := d.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantSub)
			}
		})
	}
}
