// Package compose rasterizes a composition: background, shadow, card and
// the source image, at export density. The renderer is deterministic —
// identical image, palette and settings always produce identical pixels —
// so exports are reproducible and content-addressable.
package compose

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/shotframe/shotframe/internal/layout"
	"github.com/shotframe/shotframe/internal/palette"
	"github.com/shotframe/shotframe/internal/style"
)

// Density is the export pixel density. Layout units are 1x; every export
// renders at twice that for crisp output on dense displays.
const Density = 2

// ErrNotReady is returned when there is no image to compose.
var ErrNotReady = errors.New("image not ready")

// Render rasterizes img with the given palette and style. The returned
// layout is the 1x geometry the raster was derived from; the raster
// itself is Density times larger.
func Render(img image.Image, pal palette.Palette, s style.Settings) (*image.NRGBA, layout.Layout, error) {
	if img == nil {
		return nil, layout.Layout{}, ErrNotReady
	}
	b := img.Bounds()
	natural := layout.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	if natural.Zero() {
		return nil, layout.Layout{}, ErrNotReady
	}

	s = s.Clamp()
	l := layout.Compute(s, natural)
	w := int(math.Round(l.Export.W * Density))
	h := int(math.Round(l.Export.H * Density))
	dc := gg.NewContext(w, h)

	if err := paintBackground(dc, pal, s, w, h); err != nil {
		return nil, l, err
	}

	cardW := l.Card.W * Density
	cardH := l.Card.H * Density
	cardX := (float64(w) - cardW) / 2
	cardY := (float64(h) - cardH) / 2
	radius := s.CornerRadius * Density

	if s.Shadow > 0 {
		drawShadow(dc, cardX, cardY, cardW, cardH, radius, layout.Shadow(s.Shadow, s.ShadowAngle))
	}

	// Card fill is the inset border around the image.
	dc.SetRGBA(1, 1, 1, 1)
	roundedRect(dc, cardX, cardY, cardW, cardH, radius)
	dc.Fill()

	// Image, scaled and panned, clipped to the inner rounded rect.
	inset := s.Inset * Density
	innerX := cardX + inset
	innerY := cardY + inset
	innerW := cardW - 2*inset
	innerH := cardH - 2*inset
	innerR := math.Max(0, radius-inset)

	scaled := imaging.Resize(img,
		atLeast1(math.Round(l.Image.W*Density)),
		atLeast1(math.Round(l.Image.H*Density)),
		imaging.Lanczos)

	roundedRect(dc, innerX, innerY, innerW, innerH, innerR)
	dc.Clip()
	dc.DrawImage(scaled,
		int(math.Round(innerX+s.PanX*Density)),
		int(math.Round(innerY+s.PanY*Density)))
	dc.ResetClip()

	return imaging.Clone(dc.Image()), l, nil
}

// paintBackground fills the canvas for the style's background kind.
// Transparent leaves the canvas empty so the alpha channel survives into
// PNG export.
func paintBackground(dc *gg.Context, pal palette.Palette, s style.Settings, w, h int) error {
	switch s.BackgroundKind {
	case style.BackgroundTransparent:
		return nil
	case style.BackgroundMesh:
		arr := palette.Shuffle(pal.Colors[:], s.MeshSeed)
		dc.DrawImage(Mesh(arr, s.MeshSeed, w, h), 0, 0)
		return nil
	default: // custom, preset, ai — all carry a spec string
		bg, err := style.ParseBackground(s.Background)
		if err != nil {
			return fmt.Errorf("background spec: %w", err)
		}
		paintSpec(dc, bg, float64(w), float64(h))
		return nil
	}
}

// paintSpec fills the canvas with a parsed solid or linear gradient.
func paintSpec(dc *gg.Context, bg style.Background, w, h float64) {
	if bg.Solid() {
		dc.SetColor(bg.Stops[0])
		dc.Clear()
		return
	}

	// Gradient axis through the center, long enough to cover the corners.
	rad := bg.Angle * math.Pi / 180
	cx, cy := w/2, h/2
	r := math.Hypot(w, h) / 2
	dx, dy := math.Cos(rad)*r, math.Sin(rad)*r

	grad := gg.NewLinearGradient(cx-dx, cy-dy, cx+dx, cy+dy)
	last := float64(len(bg.Stops) - 1)
	for i, c := range bg.Stops {
		grad.AddColorStop(float64(i)/last, c)
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// drawShadow paints the directional card shadow: the card silhouette,
// offset and inflated by spread, softened at quarter resolution and
// composited under where the card will go.
func drawShadow(dc *gg.Context, x, y, w, h, radius float64, sp layout.ShadowSpec) {
	cw, ch := dc.Width(), dc.Height()
	spread := sp.Spread * Density
	sx := x + float64(sp.OffsetX)*Density - spread
	sy := y + float64(sp.OffsetY)*Density - spread
	sw := w + 2*spread
	sh := h + 2*spread
	if sw <= 0 || sh <= 0 {
		return
	}

	lw, lh := quarter(cw), quarter(ch)
	k := float64(lw) / float64(cw)
	sdc := gg.NewContext(lw, lh)
	sdc.SetRGBA(0, 0, 0, sp.Alpha)
	roundedRect(sdc, sx*k, sy*k, sw*k, sh*k, (radius+spread)*k)
	sdc.Fill()

	soft := imaging.Blur(sdc.Image(), math.Max(1, sp.Blur*Density*k/2))
	dc.DrawImage(imaging.Resize(soft, cw, ch, imaging.Lanczos), 0, 0)
}

// roundedRect adds a rounded rectangle path, degrading to a plain
// rectangle at zero radius and clamping the radius to the short side.
func roundedRect(dc *gg.Context, x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	dc.DrawRoundedRectangle(x, y, w, h, r)
}

func atLeast1(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
