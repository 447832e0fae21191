// Package palette extracts the muted five-color accent set that drives
// mesh backgrounds, and provides the deterministic shuffle that rearranges
// it.
//
// Extraction is a fixed pipeline: grid sampling, frequency quantization,
// a hue-preserving mute toward low saturation and high lightness, then a
// distinctness pass that keeps the five most frequent distinct results.
// Identical input produces identical output; nothing here holds state
// between calls.
package palette

import (
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of colors in every derived palette.
const Size = 5

// Palette is the extracted accent set. Dominant duplicates Colors[0] so
// callers never have to reach into the array for the headline color.
type Palette struct {
	Dominant string
	Colors   [Size]string
}

// fallbackColors pads palettes when an image yields too few usable bins
// (near-black screenshots, blank canvases, sampling failure). Gray
// pastels, close to the muted band.
var fallbackColors = [Size]string{
	"#d4cdc5",
	"#c9ccd1",
	"#cdd4cb",
	"#d6cdd2",
	"#c8c5cc",
}

// Fallback returns the all-fallback palette used before any image is
// loaded.
func Fallback() Palette {
	p := Palette{Colors: fallbackColors}
	p.Dominant = p.Colors[0]
	return p
}

// quantization constants. Channels are floored to multiples of binStep
// (8 levels per channel); pixels outside the brightness window or below
// the alpha floor never reach a bin.
const (
	binStep      = 32
	alphaFloor   = 128
	brightnessLo = 60
	brightnessHi = 230
)

// Derive extracts the palette from img. Never fails: an unreadable or
// degenerate image produces the fallback palette, still Size long.
func Derive(img image.Image) Palette {
	return fromSamples(Sample(img))
}

// bin is one quantized color bucket.
type bin struct {
	key   uint32 // r<<16 | g<<8 | b, channels pre-floored
	count int
}

// fromSamples runs quantization and selection over packed RGBA bytes.
func fromSamples(rgba []byte) Palette {
	counts := make(map[uint32]int, 256)
	for i := 0; i+3 < len(rgba); i += 4 {
		a := rgba[i+3]
		if a < alphaFloor {
			continue
		}
		r, g, b := rgba[i], rgba[i+1], rgba[i+2]
		brightness := (int(r) + int(g) + int(b)) / 3
		if brightness < brightnessLo || brightness > brightnessHi {
			continue
		}
		key := uint32(r/binStep*binStep)<<16 | uint32(g/binStep*binStep)<<8 | uint32(b/binStep*binStep)
		counts[key]++
	}

	bins := make([]bin, 0, len(counts))
	for k, c := range counts {
		bins = append(bins, bin{key: k, count: c})
	}
	// Most frequent first; ties broken by key so map order never leaks
	// into the result.
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].count != bins[j].count {
			return bins[i].count > bins[j].count
		}
		return bins[i].key < bins[j].key
	})

	var p Palette
	n := 0
	seen := make(map[string]bool, Size)
	for _, b := range bins {
		if n == Size {
			break
		}
		hex := Muted(byte(b.key>>16), byte(b.key>>8), byte(b.key))
		if seen[hex] {
			continue
		}
		seen[hex] = true
		p.Colors[n] = hex
		n++
	}
	for ; n < Size; n++ {
		p.Colors[n] = fallbackColors[n%Size]
	}
	p.Dominant = p.Colors[0]
	return p
}

// Muted maps a color into the soft pastel band: hue kept, saturation
// compressed to [0.05,0.15], lightness lifted to [0.75,0.85]. Output is
// lowercase #rrggbb.
func Muted(r, g, b byte) string {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	s = 0.05 + math.Min(s, 0.5)*0.20
	l = 0.75 + math.Min(l, 1.0)*0.10
	return colorful.Hsl(h, s, l).Clamped().Hex()
}
