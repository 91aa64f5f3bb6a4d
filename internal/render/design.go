package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/glassicon/internal/render/layout"
)

// Design holds every parameter of the logo. DefaultDesign returns the
// shipped artwork; tests and callers may tweak a copy.
type Design struct {
	Size int

	GradientFrom color.NRGBA
	GradientTo   color.NRGBA

	// Glass panels: GlassSteps concentric rounded rectangles, the outermost
	// GlassMargin pixels from the canvas edge and each following one
	// GlassInset pixels further in.
	GlassMargin     int
	GlassInset      int
	GlassSteps      int
	GlassRadius     int
	GlassRadiusStep int
	GlassAlpha      int
	GlassAlphaStep  int
	BlurSigma       float64

	// Center anchors the bracket glyphs.
	Center image.Point
	// Bracket is the left bracket polyline as offsets from Center. The
	// right bracket is its mirror image across the vertical axis.
	Bracket      []image.Point
	BracketWidth int
	BracketInk   color.NRGBA

	Sparkles   []Sparkle
	SparkleInk color.NRGBA

	// Antialias keeps fractional edge coverage. When false, shape edges are
	// hard (coverage below one half is dropped).
	Antialias bool
}

// Sparkle is a filled dot of the overlay.
type Sparkle struct {
	X, Y   int
	Radius int
}

// RoundedRect is a filled rounded rectangle. Bounds covers the painted
// pixels, so a box with inclusive corners (x0,y0)-(x1,y1) has
// Bounds = image.Rect(x0, y0, x1+1, y1+1).
type RoundedRect struct {
	Bounds image.Rectangle
	Radius int
	Fill   color.NRGBA
}

// Segment is a straight stroke between pixel centres.
type Segment struct {
	From, To image.Point
	Width    int
	Ink      color.NRGBA
}

// Circle is a filled disc covering the pixels Center±Radius.
type Circle struct {
	Center image.Point
	Radius int
	Fill   color.NRGBA
}

// DefaultDesign returns the logo constants.
func DefaultDesign() Design {
	return Design{
		Size:            CanvasSize,
		GradientFrom:    GradientTop,
		GradientTo:      GradientBottom,
		GlassMargin:     glassMargin,
		GlassInset:      glassInset,
		GlassSteps:      glassSteps,
		GlassRadius:     glassRadius,
		GlassRadiusStep: glassRadiusStep,
		GlassAlpha:      glassAlpha,
		GlassAlphaStep:  glassAlphaStep,
		BlurSigma:       glassBlurSigma,
		Center:          image.Pt(CanvasSize/2, CanvasSize/2),
		Bracket: []image.Point{
			{X: -60, Y: -30},
			{X: -80, Y: -30},
			{X: -90, Y: 0},
			{X: -80, Y: 30},
			{X: -60, Y: 30},
		},
		BracketWidth: bracketWidth,
		BracketInk:   BracketInk,
		Sparkles: []Sparkle{
			{X: 150, Y: 150, Radius: 8},
			{X: 380, Y: 140, Radius: 6},
			{X: 160, Y: 370, Radius: 7},
			{X: 370, Y: 360, Radius: 9},
			{X: 256, Y: 120, Radius: 5},
			{X: 256, Y: 390, Radius: 6},
		},
		SparkleInk: SparkleInk,
	}
}

// Canvas returns the full canvas rectangle.
func (d Design) Canvas() image.Rectangle {
	return image.Rect(0, 0, d.Size, d.Size)
}

// GlassPanels returns the glass rectangles, outermost first.
func (d Design) GlassPanels() []RoundedRect {
	// The reference box is inclusive on both ends: [m, m, size-m, size-m].
	box := image.Rect(0, 0, d.Size+1, d.Size+1)
	panels := make([]RoundedRect, 0, d.GlassSteps)
	for i := 0; i < d.GlassSteps; i++ {
		panels = append(panels, RoundedRect{
			Bounds: layout.Inset(box, d.GlassMargin+i*d.GlassInset),
			Radius: d.GlassRadius - i*d.GlassRadiusStep,
			Fill:   color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: uint8(d.glassAlphaAt(i))},
		})
	}
	return panels
}

func (d Design) glassAlphaAt(step int) int {
	return d.GlassAlpha - step*d.GlassAlphaStep
}

// BracketSegments returns the strokes of both brackets in absolute
// coordinates, left bracket first.
func (d Design) BracketSegments() []Segment {
	var segs []Segment
	for _, mirror := range []int{1, -1} {
		for i := 1; i < len(d.Bracket); i++ {
			a, b := d.Bracket[i-1], d.Bracket[i]
			segs = append(segs, Segment{
				From:  image.Pt(d.Center.X+mirror*a.X, d.Center.Y+a.Y),
				To:    image.Pt(d.Center.X+mirror*b.X, d.Center.Y+b.Y),
				Width: d.BracketWidth,
				Ink:   d.BracketInk,
			})
		}
	}
	return segs
}

// SparkleDots returns the sparkle circles.
func (d Design) SparkleDots() []Circle {
	dots := make([]Circle, 0, len(d.Sparkles))
	for _, s := range d.Sparkles {
		dots = append(dots, Circle{Center: image.Pt(s.X, s.Y), Radius: s.Radius, Fill: d.SparkleInk})
	}
	return dots
}

// Bounds returns the pixels a segment may touch.
func (s Segment) Bounds() image.Rectangle {
	half := (s.Width + 1) / 2
	r := image.Rectangle{Min: s.From, Max: s.To}.Canon()
	return image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X+half+1, r.Max.Y+half+1)
}

// Bounds returns the pixels the circle covers.
func (c Circle) Bounds() image.Rectangle {
	return image.Rect(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Center.X+c.Radius+1, c.Center.Y+c.Radius+1)
}

// Extent returns the union of every shape's bounds.
func (d Design) Extent() image.Rectangle {
	var r image.Rectangle
	for _, p := range d.GlassPanels() {
		r = r.Union(p.Bounds)
	}
	for _, s := range d.BracketSegments() {
		r = r.Union(s.Bounds())
	}
	for _, c := range d.SparkleDots() {
		r = r.Union(c.Bounds())
	}
	return r
}

// Validate reports parameters that cannot produce a sensible image.
func (d Design) Validate() error {
	if d.Size <= 0 {
		return fmt.Errorf("canvas size must be positive, got %d", d.Size)
	}
	if d.GlassSteps < 0 {
		return fmt.Errorf("glass steps must not be negative, got %d", d.GlassSteps)
	}
	if d.GlassSteps > 0 {
		last := d.GlassSteps - 1
		if a := d.glassAlphaAt(last); a < 0 || d.GlassAlpha > 0xFF {
			return fmt.Errorf("glass alpha out of range at step %d: %d", last, a)
		}
		if r := d.GlassRadius - last*d.GlassRadiusStep; r < 0 {
			return fmt.Errorf("glass radius negative at step %d: %d", last, r)
		}
	}
	if d.BlurSigma < 0 {
		return fmt.Errorf("blur sigma must not be negative, got %v", d.BlurSigma)
	}
	if len(d.Bracket) == 1 {
		return errors.New("bracket needs at least two points")
	}
	if ext := d.Extent(); !ext.In(d.Canvas()) {
		return fmt.Errorf("shapes extend outside the %dx%d canvas: %v", d.Size, d.Size, ext)
	}
	return nil
}
