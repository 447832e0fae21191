package encoder

import (
	"image"
)

// DefaultQuality is used when a caller passes a quality outside 1-100.
// Exports are screenshots with text, so the default leans high.
const DefaultQuality = 90

// Encoder turns a rendered export into bytes in one output format.
type Encoder interface {
	// Format returns the output format name ("png", "jpeg", "webp", "avif").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)

	// Available reports whether the encoder can run. External encoders
	// (cwebp, avifenc) may not be installed.
	Available() bool

	// SupportsAlpha reports whether the format keeps transparency.
	// Transparent-background exports must go through an alpha format.
	SupportsAlpha() bool

	// Extension returns the file extension without dot.
	Extension() string
}
