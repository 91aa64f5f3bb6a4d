// Package preview shows a rendered logo on the Linux framebuffer console.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/glassicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Background and caption colours of the preview screen.
var (
	Background = color.RGBA{R: 0x1E, G: 0x1E, B: 0x2E, A: 0xFF}
	Foreground = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
)

// logoShare is the fraction of the shorter screen side the logo may use.
const logoShare = 0.6

// captionMargin separates the logo from its caption.
const captionMargin = 24

// LoadFace returns the caption font, falling back to basicfont when the
// embedded Go font cannot be parsed.
func LoadFace(sizePt float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: sizePt, DPI: 96, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13, err
	}
	return face, nil
}

// Compose draws logo centred on a screen of the given size with caption
// underneath. It returns the frame and where the logo landed.
func Compose(screen image.Rectangle, logo image.Image, caption string, face font.Face) (*image.RGBA, image.Rectangle) {
	frame := image.NewRGBA(screen)
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	// Leave room for one caption line below the logo.
	lineHeight := 0
	if face != nil && caption != "" {
		lineHeight = face.Metrics().Height.Ceil() + captionMargin
	}
	area, _ := layout.SplitHorizontal(screen, screen.Dy()-lineHeight)
	square := layout.FitSquare(area)
	side := int(float64(square.Dx()) * logoShare)
	logoRect := layout.Center(area, side, side)

	// Scale straight onto the frame, blending the logo's alpha.
	xdraw.CatmullRom.Scale(frame, logoRect, logo, logo.Bounds(), xdraw.Over, nil)

	if lineHeight > 0 {
		drawCaption(frame, caption, logoRect.Max.Y+captionMargin+face.Metrics().Ascent.Ceil(), face)
	}
	return frame, logoRect
}

// drawCaption draws text horizontally centred on baselineY.
func drawCaption(img *image.RGBA, text string, baselineY int, face font.Face) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Foreground),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	xPos := img.Bounds().Min.X + (img.Bounds().Dx()-textWidth)/2
	drawer.Dot = fixed.P(xPos, baselineY)
	drawer.DrawString(text)
}
