package render

import (
	"fmt"
	"image"
	"time"
)

// Logger receives progress lines from the renderer.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Stage is one step of the logo pipeline. Apply must not modify its input.
type Stage struct {
	Name  string
	Apply func(canvas *image.NRGBA) *image.NRGBA
}

// Pipeline returns the ordered stages that turn a blank canvas into the
// finished logo: gradient, blurred glass, bracket and sparkle overlay.
func Pipeline(d Design) []Stage {
	return []Stage{
		{Name: "gradient", Apply: func(c *image.NRGBA) *image.NRGBA {
			return Gradient(c, d.GradientFrom, d.GradientTo)
		}},
		{Name: "glass", Apply: func(c *image.NRGBA) *image.NRGBA {
			return Composite(c, Blur(GlassLayer(d), d.BlurSigma))
		}},
		{Name: "overlay", Apply: func(c *image.NRGBA) *image.NRGBA {
			return Composite(c, OverlayLayer(d))
		}},
	}
}

// Render validates d and runs its pipeline on a fresh canvas.
// logger may be nil.
func Render(d Design, logger Logger) (*image.NRGBA, error) {
	if err := d.Validate(); err != nil {
		if logger != nil {
			logger.Errorf("render", "invalid design: %v", err)
		}
		return nil, fmt.Errorf("invalid design: %w", err)
	}
	canvas := NewCanvas(d.Size)
	for _, stage := range Pipeline(d) {
		start := time.Now()
		canvas = stage.Apply(canvas)
		if logger != nil {
			logger.Infof("render", "stage %s done in %s", stage.Name, time.Since(start).Round(time.Millisecond))
		}
	}
	return canvas, nil
}
