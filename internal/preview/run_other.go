//go:build !linux

package preview

import (
	"context"
	"errors"
	"image"
)

// ErrUnsupported is returned on platforms without a Linux framebuffer.
var ErrUnsupported = errors.New("framebuffer preview is only supported on linux")

// Run reports ErrUnsupported.
func Run(ctx context.Context, opts Options, logo image.Image) error {
	return ErrUnsupported
}
