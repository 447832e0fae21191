package layout

import "math"

// ShadowSpec holds the derived card shadow parameters for one intensity
// and direction. Offsets are whole pixels; blur, spread and alpha stay
// fractional for the renderer.
type ShadowSpec struct {
	OffsetX int
	OffsetY int
	Blur    float64
	Spread  float64
	Alpha   float64
}

// Shadow derives the shadow for an intensity in [0,100] cast toward
// angleDeg. Every parameter scales linearly with intensity so one slider
// controls distance, softness and darkness together.
func Shadow(intensity, angleDeg float64) ShadowSpec {
	rad := angleDeg * math.Pi / 180
	distance := intensity * 0.6
	return ShadowSpec{
		OffsetX: int(math.Round(math.Cos(rad) * distance)),
		OffsetY: int(math.Round(math.Sin(rad) * distance)),
		Blur:    intensity * 1.2,
		Spread:  -intensity * 0.1,
		Alpha:   0.15 + intensity/250,
	}
}

// PointerAngle converts a drag vector from the card center into degrees
// in [0,360), 0 pointing right, growing toward positive Y.
func PointerAngle(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// LightAngle returns where the light indicator sits for a shadow angle:
// directly opposite, so dragging the light pushes the shadow away from it.
func LightAngle(shadowAngle float64) float64 {
	deg := math.Mod(shadowAngle+180, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
