package compose

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/shotframe/shotframe/internal/palette"
)

// Blob geometry comes from the same seeded sequence as the shuffle, so a
// seed pins the whole background, not just the color order.
const meshBlobs = 6

// Mesh renders the soft blob background for an arrangement of colors.
// Blobs are laid out and sized by the seed, painted as radial falloffs at
// quarter resolution, then blurred and upscaled; the low-res pass is what
// makes the result cheap and soft at the same time.
func Mesh(colors []string, seed int64, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	lw, lh := quarter(w), quarter(h)
	dc := gg.NewContext(lw, lh)

	base := meshColor(colors, 0)
	dc.SetColor(base)
	dc.Clear()

	seq := palette.NewSeq(seed)
	maxDim := float64(lw)
	if lh > lw {
		maxDim = float64(lh)
	}
	for i := 0; i < meshBlobs; i++ {
		c := meshColor(colors, i+1)
		cx := seq.Next() * float64(lw)
		cy := seq.Next() * float64(lh)
		r := (0.35 + seq.Next()*0.45) * maxDim

		grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
		grad.AddColorStop(0, withAlpha(c, 0.9))
		grad.AddColorStop(1, withAlpha(c, 0))
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, float64(lw), float64(lh))
		dc.Fill()
	}

	soft := imaging.Blur(dc.Image(), math.Max(2, maxDim/24))
	return imaging.Resize(soft, w, h, imaging.Lanczos)
}

func quarter(v int) int {
	q := v / 4
	if q < 1 {
		q = 1
	}
	return q
}

// meshColor returns a cyclic entry of the arrangement, falling back to
// the neutral fallback palette when the arrangement is empty.
func meshColor(colors []string, i int) color.Color {
	if len(colors) == 0 {
		fb := palette.Fallback()
		colors = fb.Colors[:]
	}
	c, err := colorful.Hex(colors[i%len(colors)])
	if err != nil {
		c = colorful.Color{R: 0.85, G: 0.84, B: 0.82}
	}
	return c
}

func withAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a*255 + 0.5),
	}
}
