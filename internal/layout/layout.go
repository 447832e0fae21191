// Package layout solves composition geometry: how big the displayed image,
// the card around it, and the export frame are for a given style, plus the
// viewport fit scale and the card shadow parameters.
//
// Everything here is pure float math over value types. Results are never
// rounded; rasterization decides pixel snapping. Identical inputs always
// produce identical outputs.
package layout

import "github.com/shotframe/shotframe/internal/style"

// Size is a width/height pair in layout pixels.
type Size struct {
	W, H float64
}

// Zero reports whether the size is degenerate.
func (s Size) Zero() bool {
	return s.W <= 0 || s.H <= 0
}

// Layout is the solved geometry of one composition. Image sits centered in
// Card, Card sits centered in Export.
type Layout struct {
	Export Size // full export frame
	Card   Size // bordered card around the image
	Image  Size // image at display scale
}

// Compute solves the layout for a style and the image's natural size.
//
// The image scales by Scale percent, the card adds Inset on every side,
// and the frame adds Padding on every side. With a fixed aspect ratio the
// frame grows along exactly one axis beyond that minimum: the width-bound
// candidate is tried first and the height-bound one taken when the
// candidate would crop the card. A zero natural size means the image is
// not ready yet and yields a zero Layout.
func Compute(s style.Settings, natural Size) Layout {
	if natural.Zero() {
		return Layout{}
	}

	img := Size{
		W: natural.W * s.Scale / 100,
		H: natural.H * s.Scale / 100,
	}
	card := Size{
		W: img.W + 2*s.Inset,
		H: img.H + 2*s.Inset,
	}
	min := Size{
		W: card.W + 2*s.Padding,
		H: card.H + 2*s.Padding,
	}

	export := min
	if !s.AspectRatio.Auto() {
		ratio := s.AspectRatio.Value()
		export = Size{W: min.W, H: min.W / ratio}
		if export.H < min.H {
			export = Size{W: min.H * ratio, H: min.H}
		}
	}

	return Layout{Export: export, Card: card, Image: img}
}
