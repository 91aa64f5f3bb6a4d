package render

import (
	"image"
	"image/color"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// FillRoundedRect paints rr onto dst, replacing the pixels it covers.
func FillRoundedRect(dst *image.NRGBA, rr RoundedRect, antialias bool) {
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	x0, y0 := float32(rr.Bounds.Min.X), float32(rr.Bounds.Min.Y)
	x1, y1 := float32(rr.Bounds.Max.X), float32(rr.Bounds.Max.Y)
	r := min(float32(rr.Radius), (x1-x0)/2, (y1-y0)/2)
	if r < 0 {
		r = 0
	}
	k := r * (1 - kappa)

	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-k, x1-k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+k, x0+k, y0, x0+r, y0)
	z.ClosePath()

	paintMask(dst, coverage(z), rr.Fill, antialias)
}

// FillCircle paints c onto dst, replacing the pixels it covers.
func FillCircle(dst *image.NRGBA, c Circle, antialias bool) {
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	// The disc spans whole pixels: centre on the pixel centre, radius
	// grown by half a pixel so Center±Radius are included.
	cx, cy := float32(c.Center.X)+0.5, float32(c.Center.Y)+0.5
	r := float32(c.Radius) + 0.5
	k := r * kappa

	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()

	paintMask(dst, coverage(z), c.Fill, antialias)
}

// StrokeSegment paints s onto dst with butt ends, replacing the pixels it
// covers.
func StrokeSegment(dst *image.NRGBA, s Segment, antialias bool) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	var path raster.Path
	path.Start(pixelCenter(s.From))
	path.Add1(pixelCenter(s.To))

	r := raster.NewRasterizer(w, h)
	r.UseNonZeroWinding = true
	raster.Stroke(r, path, fixed.I(s.Width), raster.ButtCapper, raster.BevelJoiner)
	r.Rasterize(raster.NewAlphaSrcPainter(mask))

	paintMask(dst, mask, s.Ink, antialias)
}

func pixelCenter(p image.Point) fixed.Point26_6 {
	half := fixed.Int26_6(32)
	return fixed.Point26_6{X: fixed.I(p.X) + half, Y: fixed.I(p.Y) + half}
}

func coverage(z *vector.Rasterizer) *image.Alpha {
	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// paintMask writes ink into dst wherever mask has coverage. Fully covered
// pixels are replaced outright, partially covered ones interpolate towards
// ink. Without antialias coverage is snapped to 0 or 1 at the half-way mark.
func paintMask(dst *image.NRGBA, mask *image.Alpha, ink color.NRGBA, antialias bool) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := mask.AlphaAt(x, y).A
			if !antialias {
				if cov < 0x80 {
					continue
				}
				cov = 0xFF
			}
			switch cov {
			case 0:
			case 0xFF:
				dst.SetNRGBA(x, y, ink)
			default:
				dst.SetNRGBA(x, y, mix(dst.NRGBAAt(x, y), ink, cov))
			}
		}
	}
}

// mix interpolates between two non-premultiplied colours by cov/255,
// weighting colour channels by alpha.
func mix(under, over color.NRGBA, cov uint8) color.NRGBA {
	t := float64(cov) / 0xFF
	ua := float64(under.A) * (1 - t)
	oa := float64(over.A) * t
	a := ua + oa
	if a == 0 {
		return color.NRGBA{}
	}
	ch := func(u, o uint8) uint8 {
		return uint8((float64(u)*ua+float64(o)*oa)/a + 0.5)
	}
	return color.NRGBA{
		R: ch(under.R, over.R),
		G: ch(under.G, over.G),
		B: ch(under.B, over.B),
		A: uint8(a + 0.5),
	}
}
