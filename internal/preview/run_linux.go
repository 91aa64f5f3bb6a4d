//go:build linux

package preview

import (
	"context"
	"fmt"
	"image"
	"time"

	fb "github.com/gonutz/framebuffer"
	"golang.org/x/image/font"
)

// redrawInterval repaints the frame so stray console output does not stay
// on screen.
const redrawInterval = time.Second

// Run shows logo on the framebuffer until ctx is done or F4 is pressed.
// The console is switched to graphics mode for the duration.
func Run(ctx context.Context, opts Options, logo image.Image) error {
	opts = opts.withDefaults()
	r := &fbRenderer{logger: opts.Logger}
	if err := r.Start(opts.Device); err != nil {
		return err
	}
	defer r.Stop()

	// Switch console to KD_GRAPHICS to suppress hardware cursor
	if err := setConsoleMode(kdGraphics); err != nil {
		opts.Logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	}
	if err := writeVT(hideCursorSeq); err != nil {
		opts.Logger.Errorf("tty", "hide cursor failed: %v", err)
	}
	defer func() {
		if err := writeVT(showCursorSeq); err != nil {
			opts.Logger.Errorf("tty", "show cursor failed: %v", err)
		}
		if err := setConsoleMode(kdText); err != nil {
			opts.Logger.Errorf("tty", "KD_TEXT failed: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	startExitOnF4(ctx, opts.Logger, cancel)

	r.Draw(logo, opts.Caption)
	r.RunLoop(ctx)
	return nil
}

// fbRenderer paints a composed frame onto the Linux framebuffer.
type fbRenderer struct {
	dev    *fb.Device
	face   font.Face
	frame  *image.RGBA
	logger Logger
}

func (r *fbRenderer) Start(device string) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	r.dev = dev
	bounds := dev.Bounds()
	r.logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	face, err := LoadFace(32)
	if err != nil {
		r.logger.Errorf("fb", "font load failed, using basicfont: %v", err)
	}
	r.face = face
	return nil
}

func (r *fbRenderer) Stop() {
	if r.dev != nil {
		r.dev.Close()
		r.dev = nil
	}
}

// Draw composes logo and caption for the device and paints it.
func (r *fbRenderer) Draw(logo image.Image, caption string) {
	if r.dev == nil {
		return
	}
	frame, logoRect := Compose(r.dev.Bounds(), logo, caption, r.face)
	r.frame = frame
	r.logger.Infof("fb", "logo placed at %v", logoRect)
	r.blit()
}

// RunLoop repaints the last frame until ctx is done.
func (r *fbRenderer) RunLoop(ctx context.Context) {
	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.blit()
		}
	}
}

func (r *fbRenderer) blit() {
	if r.dev == nil || r.frame == nil {
		return
	}
	b := r.frame.Bounds().Intersect(r.dev.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r.dev.Set(x, y, r.frame.RGBAAt(x, y))
		}
	}
}
