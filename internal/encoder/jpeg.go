package encoder

import (
	"bytes"
	"image"
	"image/draw"
	"image/jpeg"
)

// JPEGEncoder encodes exports to JPEG using Go's standard library.
// JPEG has no alpha channel, so translucent pixels are flattened onto
// white first. Without that, transparent regions decode as black.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string      { return "jpeg" }
func (e *JPEGEncoder) Extension() string   { return "jpg" }
func (e *JPEGEncoder) Available() bool     { return true }
func (e *JPEGEncoder) SupportsAlpha() bool { return false }

func (e *JPEGEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	if !isOpaque(img) {
		img = flattenOnWhite(img)
	}

	var buf bytes.Buffer
	buf.Grow(512 * 1024)

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isOpaque uses the image package's own opacity scan where offered.
// Unknown types flatten unconditionally.
func isOpaque(img image.Image) bool {
	if im, ok := img.(interface{ Opaque() bool }); ok {
		return im.Opaque()
	}
	return false
}

func flattenOnWhite(img image.Image) *image.NRGBA {
	b := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)
	return flat
}
