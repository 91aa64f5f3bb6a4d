package output

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/draw"
	"io"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// IHDR colour type for 8-bit truecolour with alpha.
const colorTypeRGBA = 6

// encodeRGBA writes img as an 8-bit RGBA PNG. image/png drops the alpha
// channel of fully opaque images; this encoder always keeps it.
func encodeRGBA(w io.Writer, img image.Image) error {
	src := asNRGBA(img)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("png: invalid image size %dx%d", width, height)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorTypeRGBA
	// compression, filter and interlace methods are all 0

	idat, err := compressRows(src)
	if err != nil {
		return err
	}

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	if err := writeChunk(w, "IHDR", ihdr[:]); err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// asNRGBA returns img as a tightly packed NRGBA anchored at the origin.
func asNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == 4*m.Rect.Dx() {
		return m
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return m
}

// compressRows filters every scanline and deflates the result. Each row
// uses whichever filter gives the smallest sum of absolute differences.
func compressRows(m *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}

	rowLen := 4 * m.Rect.Dx()
	prior := make([]byte, rowLen)
	var candidates [5][]byte
	for i := range candidates {
		candidates[i] = make([]byte, rowLen+1)
		candidates[i][0] = byte(i)
	}
	for y := 0; y < m.Rect.Dy(); y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+rowLen]
		if _, err := zw.Write(filterRow(row, prior, candidates)); err != nil {
			return nil, err
		}
		copy(prior, row)
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const bytesPerPixel = 4

// filterRow fills candidates with the five PNG filters of row and returns
// the best one, filter type byte included.
func filterRow(row, prior []byte, candidates [5][]byte) []byte {
	for i := range row {
		var left, upLeft byte
		if i >= bytesPerPixel {
			left = row[i-bytesPerPixel]
			upLeft = prior[i-bytesPerPixel]
		}
		up := prior[i]
		candidates[0][i+1] = row[i]
		candidates[1][i+1] = row[i] - left
		candidates[2][i+1] = row[i] - up
		candidates[3][i+1] = row[i] - byte((int(left)+int(up))/2)
		candidates[4][i+1] = row[i] - paeth(left, up, upLeft)
	}

	best, bestScore := 0, -1
	for i, c := range candidates {
		score := 0
		for _, v := range c[1:] {
			if s := int(int8(v)); s < 0 {
				score -= s
			} else {
				score += s
			}
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return candidates[best]
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := abs(p-int(a)), abs(p-int(b)), abs(p-int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func writeChunk(w io.Writer, name string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], name)

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	for _, part := range [][]byte{header[:], data, footer[:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("png: write %s: %w", name, err)
		}
	}
	return nil
}
