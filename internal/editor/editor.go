// Package editor owns the interactive composition state: the current
// style, the loaded image's palette and natural size, and the pointer
// drag that repositions the image.
//
// A Session is single-owner and event-driven. Every update replaces the
// settings value wholesale; derived data (layout, arrangement) is
// recomputed from scratch on demand, never cached or patched. There are
// no locks because there is nothing shared to lock.
package editor

import (
	"fmt"
	"image"

	"github.com/shotframe/shotframe/internal/layout"
	"github.com/shotframe/shotframe/internal/palette"
	"github.com/shotframe/shotframe/internal/style"
)

// Session is one open composition.
type Session struct {
	settings style.Settings
	natural  layout.Size
	pal      palette.Palette

	// drag state machine: idle <-> dragging. Anchor is the last pointer
	// position while dragging.
	dragging         bool
	anchorX, anchorY float64
}

// New returns a session with the default style and the fallback palette,
// ready for an image.
func New() *Session {
	return &Session{
		settings: style.Default(),
		pal:      palette.Fallback(),
	}
}

// SetImage loads an image into the session: natural size from its bounds
// and a freshly derived palette. A nil image returns the session to the
// not-ready state. Pan is reset because it was relative to the old image.
func (s *Session) SetImage(img image.Image) {
	if img == nil {
		s.natural = layout.Size{}
		s.pal = palette.Fallback()
		return
	}
	b := img.Bounds()
	s.natural = layout.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	s.pal = palette.Derive(img)
	s.settings.PanX = 0
	s.settings.PanY = 0
}

// Ready reports whether an image with usable dimensions is loaded.
func (s *Session) Ready() bool {
	return !s.natural.Zero()
}

// Settings returns the current style value.
func (s *Session) Settings() style.Settings {
	return s.settings
}

// Palette returns the derived palette, or the fallback before any image.
func (s *Session) Palette() palette.Palette {
	return s.pal
}

// NaturalSize returns the loaded image's natural dimensions.
func (s *Session) NaturalSize() layout.Size {
	return s.natural
}

// Apply replaces the style wholesale, clamped into range.
func (s *Session) Apply(settings style.Settings) {
	s.settings = settings.Clamp()
}

// Randomize advances the mesh seed by one, giving the next arrangement.
func (s *Session) Randomize() {
	s.settings.MeshSeed++
}

// ResetStyle restores the default style. This is the only action that
// rewinds the mesh seed.
func (s *Session) ResetStyle() {
	s.settings = style.Default()
}

// Layout solves the current geometry. Zero until an image is loaded.
func (s *Session) Layout() layout.Layout {
	return layout.Compute(s.settings, s.natural)
}

// FitScale returns the preview scale for a viewport container.
func (s *Session) FitScale(container layout.Size) float64 {
	return layout.FitScale(container, s.Layout())
}

// Arrangement returns the seeded ordering of the palette used by the mesh
// background.
func (s *Session) Arrangement() []string {
	return palette.Shuffle(s.pal.Colors[:], s.settings.MeshSeed)
}

// LightIndicator returns the on-screen angle of the light handle,
// opposite the shadow direction.
func (s *Session) LightIndicator() float64 {
	return layout.LightAngle(s.settings.ShadowAngle)
}

// PointLight aims the light handle along a drag vector from the card
// center. The shadow falls on the far side.
func (s *Session) PointLight(dx, dy float64) {
	s.settings.ShadowAngle = layout.LightAngle(layout.PointerAngle(dx, dy))
}

// PointerDown starts (or re-anchors) a drag at the given position.
func (s *Session) PointerDown(x, y float64) {
	s.dragging = true
	s.anchorX = x
	s.anchorY = y
}

// PointerMove accumulates pointer motion into the pan offset. Moves
// outside a drag are ignored.
func (s *Session) PointerMove(x, y float64) {
	if !s.dragging {
		return
	}
	s.settings.PanX += x - s.anchorX
	s.settings.PanY += y - s.anchorY
	s.anchorX = x
	s.anchorY = y
}

// PointerUp ends the drag. A stray up in the idle state is a no-op.
func (s *Session) PointerUp() {
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.dragging
}

// ApplySuggestion merges a style suggestion into the current settings:
// the background spec and a shadow intensity. The spec is validated
// first; on any error the settings are left untouched so a failed
// suggestion never degrades the composition.
func (s *Session) ApplySuggestion(background string, shadow float64) error {
	if _, err := style.ParseBackground(background); err != nil {
		return fmt.Errorf("suggestion rejected: %w", err)
	}
	next := s.settings
	next.BackgroundKind = style.BackgroundAI
	next.Background = background
	next.Shadow = shadow
	s.settings = next.Clamp()
	return nil
}
