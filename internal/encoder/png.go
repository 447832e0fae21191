package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// PNGEncoder encodes exports to PNG using Go's standard library.
// It is the only encoder guaranteed available, and the one transparent
// backgrounds resolve to when the requested format drops alpha.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string      { return "png" }
func (e *PNGEncoder) Extension() string   { return "png" }
func (e *PNGEncoder) Available() bool     { return true }
func (e *PNGEncoder) SupportsAlpha() bool { return true }

func (e *PNGEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(1024 * 1024) // 2x exports of desktop screenshots run large

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
