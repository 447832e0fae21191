// Package style defines the editor style state: the settings value that
// drives layout and composition, aspect-ratio and background spec parsing,
// and named presets.
//
// Settings is a plain value. Every change produces a new value that replaces
// the old one wholesale; nothing in this package mutates shared state.
package style

import "math"

// BackgroundKind selects how the export background is produced.
type BackgroundKind string

const (
	BackgroundMesh        BackgroundKind = "mesh"        // seeded blobs from the image palette
	BackgroundCustom      BackgroundKind = "custom"      // user-supplied spec string
	BackgroundPreset      BackgroundKind = "preset"      // built-in gradient
	BackgroundAI          BackgroundKind = "ai"          // spec string returned by the suggestion service
	BackgroundTransparent BackgroundKind = "transparent" // no fill, alpha preserved
)

// Valid reports whether k is one of the five background kinds.
func (k BackgroundKind) Valid() bool {
	switch k {
	case BackgroundMesh, BackgroundCustom, BackgroundPreset, BackgroundAI, BackgroundTransparent:
		return true
	}
	return false
}

// Settings holds every knob of a composition.
//
// Units are CSS-like pixels at 1x density; the export renderer doubles them.
// Scale is a percentage of the image's natural size. ShadowAngle is degrees
// with 0 pointing right and angles growing counter-clockwise.
type Settings struct {
	Padding      float64 // space between card and export edge, 0-400
	Inset        float64 // card border around the image, 0-100
	CornerRadius float64 // card corner rounding, 0-100
	Shadow       float64 // shadow intensity, 0-100
	ShadowAngle  float64 // shadow direction in degrees, [0,360)

	BackgroundKind BackgroundKind
	Background     string // spec string for custom/preset/ai kinds

	AspectRatio AspectRatio // zero value = auto (hug the card)
	Scale       float64     // image scale percent, 10-300
	PanX, PanY  float64     // image offset inside the card, unbounded
	MeshSeed    int64       // seed for mesh arrangement and shuffle
}

// Default returns the style applied to a freshly opened image.
func Default() Settings {
	return Settings{
		Padding:        64,
		Inset:          16,
		CornerRadius:   12,
		Shadow:         25,
		ShadowAngle:    135,
		BackgroundKind: BackgroundMesh,
		Scale:          100,
		MeshSeed:       1,
	}
}

// Clamp returns a copy of s with every field forced into its valid range.
// An unknown background kind falls back to mesh and a bad angle is wrapped
// into [0,360); the caller never sees an out-of-range settings value.
func (s Settings) Clamp() Settings {
	s.Padding = clampF(s.Padding, 0, 400)
	s.Inset = clampF(s.Inset, 0, 100)
	s.CornerRadius = clampF(s.CornerRadius, 0, 100)
	s.Shadow = clampF(s.Shadow, 0, 100)
	s.ShadowAngle = wrapAngle(s.ShadowAngle)
	s.Scale = clampF(s.Scale, 10, 300)
	if !s.BackgroundKind.Valid() {
		s.BackgroundKind = BackgroundMesh
	}
	if s.AspectRatio.W < 0 || s.AspectRatio.H < 0 {
		s.AspectRatio = AspectRatio{}
	}
	if math.IsNaN(s.PanX) {
		s.PanX = 0
	}
	if math.IsNaN(s.PanY) {
		s.PanY = 0
	}
	return s
}

// clampF forces v into [lo,hi]. NaN collapses to lo so corrupt input can
// never leak out of Clamp.
func clampF(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapAngle normalizes degrees into [0,360).
func wrapAngle(deg float64) float64 {
	if math.IsNaN(deg) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
