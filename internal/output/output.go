// Package output turns a rendered master into named PNG artifacts and
// writes them to disk.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/rook-computer/glassicon/internal/render"
)

// MasterName is the file name of the full-size logo.
const MasterName = "icon.png"

// DefaultVariants are the downscaled sizes written next to the master.
var DefaultVariants = []int{128, 64}

// ErrNoOutputDir is returned when the output directory does not exist.
var ErrNoOutputDir = errors.New("output directory does not exist")

// Artifact is one image to be written.
type Artifact struct {
	Name  string
	Size  int
	Image image.Image
}

// VariantName returns the file name of a downscaled copy.
func VariantName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// Master wraps the full-size render.
func Master(img image.Image) Artifact {
	return Artifact{Name: MasterName, Size: img.Bounds().Dx(), Image: img}
}

// Variants resamples master to each size with the Lanczos filter. Repeated
// sizes produce one artifact.
func Variants(master image.Image, sizes []int) []Artifact {
	out := make([]Artifact, 0, len(sizes))
	seen := make(map[int]bool, len(sizes))
	for _, size := range sizes {
		if seen[size] {
			continue
		}
		seen[size] = true
		out = append(out, Artifact{Name: VariantName(size), Size: size, Image: render.Resize(master, size)})
	}
	return out
}

// Artifacts returns the master followed by its variants.
func Artifacts(master image.Image, sizes []int) []Artifact {
	return append([]Artifact{Master(master)}, Variants(master, sizes)...)
}

// Encode writes img as an 8-bit RGBA PNG. The alpha channel is written
// even when every pixel is opaque.
func Encode(w io.Writer, img image.Image) error {
	return encodeRGBA(w, img)
}

// EncodeBytes returns img encoded as PNG.
func EncodeBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CheckDir reports whether dir exists and is a directory.
func CheckDir(dir string) error {
	st, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoOutputDir, dir)
	}
	if err != nil {
		return fmt.Errorf("stat output directory: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("output path %s is not a directory", dir)
	}
	return nil
}

// Write encodes a into dir/a.Name and returns the final path. The image is
// written to a temporary file in dir first and renamed into place, so a
// failed write never leaves a truncated file under the final name.
func Write(dir string, a Artifact) (string, error) {
	if err := CheckDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, a.Name)

	tmp, err := os.CreateTemp(dir, "."+a.Name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := Encode(tmp, a.Image); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", fmt.Errorf("rename %s: %w", path, err)
	}
	return path, nil
}

// WriteAll writes every artifact in order and stops at the first error.
// Files written before the failure are left in place.
func WriteAll(dir string, artifacts []Artifact) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		p, err := Write(dir, a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
