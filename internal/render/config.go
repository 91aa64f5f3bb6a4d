package render

import "image/color"

// Palette and canvas constants for the logo.
var (
	// Background gradient end points, top row to bottom row.
	GradientTop    = color.NRGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF} // #667eea
	GradientBottom = color.NRGBA{R: 0xF0, G: 0x93, B: 0xFB, A: 0xFF} // #f093fb

	// Overlay ink. Alpha is set per shape group.
	BracketInk = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 200}
	SparkleInk = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 150}
)

const (
	// CanvasSize is the side length of the master image.
	CanvasSize = 512

	glassMargin     = 80
	glassInset      = 15
	glassSteps      = 3
	glassRadius     = 40
	glassRadiusStep = 5
	glassAlpha      = 80
	glassAlphaStep  = 20
	glassBlurSigma  = 8

	bracketWidth = 12
)
