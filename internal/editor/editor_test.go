package editor

import (
	"image"
	"image/color"
	"testing"

	"github.com/shotframe/shotframe/internal/layout"
	"github.com/shotframe/shotframe/internal/palette"
	"github.com/shotframe/shotframe/internal/style"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{120, 140, byte(100 + x%100), 255})
		}
	}
	return img
}

func TestNewSessionNotReady(t *testing.T) {
	s := New()
	if s.Ready() {
		t.Error("fresh session should not be ready")
	}
	if s.Layout() != (layout.Layout{}) {
		t.Errorf("layout before image = %+v, want zero", s.Layout())
	}
	if s.Palette() != palette.Fallback() {
		t.Errorf("palette before image = %+v, want fallback", s.Palette())
	}
}

func TestSetImage(t *testing.T) {
	s := New()
	st := s.Settings()
	st.PanX, st.PanY = 40, -12
	s.Apply(st)

	s.SetImage(testImage(640, 480))
	if !s.Ready() {
		t.Fatal("session should be ready after SetImage")
	}
	if s.NaturalSize() != (layout.Size{W: 640, H: 480}) {
		t.Errorf("natural = %+v, want 640x480", s.NaturalSize())
	}
	if s.Settings().PanX != 0 || s.Settings().PanY != 0 {
		t.Errorf("pan should reset on new image, got (%v,%v)", s.Settings().PanX, s.Settings().PanY)
	}
	if s.Palette() == palette.Fallback() {
		t.Error("palette should be derived from the image")
	}

	s.SetImage(nil)
	if s.Ready() {
		t.Error("nil image should unload the session")
	}
}

func TestApplyClamps(t *testing.T) {
	s := New()
	st := s.Settings()
	st.Padding = 9999
	st.Scale = 1
	s.Apply(st)
	if got := s.Settings(); got.Padding != 400 || got.Scale != 10 {
		t.Errorf("Apply did not clamp: %+v", got)
	}
}

func TestRandomizeAdvancesSeed(t *testing.T) {
	s := New()
	seed := s.Settings().MeshSeed
	s.Randomize()
	if s.Settings().MeshSeed != seed+1 {
		t.Errorf("seed = %d, want %d", s.Settings().MeshSeed, seed+1)
	}
	s.Randomize()
	if s.Settings().MeshSeed != seed+2 {
		t.Errorf("seed = %d, want %d", s.Settings().MeshSeed, seed+2)
	}
}

func TestResetStyleRestoresDefaults(t *testing.T) {
	s := New()
	s.Randomize()
	st := s.Settings()
	st.Padding = 10
	st.Shadow = 90
	s.Apply(st)

	s.ResetStyle()
	if s.Settings() != style.Default() {
		t.Errorf("after reset: %+v, want defaults", s.Settings())
	}
}

func TestDragStateMachine(t *testing.T) {
	s := New()
	s.SetImage(testImage(100, 100))

	// Moves and ups in idle are ignored.
	s.PointerMove(50, 50)
	s.PointerUp()
	if s.Dragging() {
		t.Fatal("idle session reports dragging")
	}
	if st := s.Settings(); st.PanX != 0 || st.PanY != 0 {
		t.Fatalf("idle move changed pan: (%v,%v)", st.PanX, st.PanY)
	}

	// Down -> moves accumulate -> up.
	s.PointerDown(10, 10)
	if !s.Dragging() {
		t.Fatal("down did not start drag")
	}
	s.PointerMove(15, 12)
	s.PointerMove(18, 20)
	if st := s.Settings(); st.PanX != 8 || st.PanY != 10 {
		t.Errorf("pan = (%v,%v), want (8,10)", st.PanX, st.PanY)
	}

	s.PointerUp()
	if s.Dragging() {
		t.Fatal("up did not end drag")
	}
	s.PointerMove(100, 100)
	if st := s.Settings(); st.PanX != 8 || st.PanY != 10 {
		t.Errorf("move after up changed pan: (%v,%v)", st.PanX, st.PanY)
	}

	// A second drag continues from the existing pan.
	s.PointerDown(0, 0)
	s.PointerMove(-3, 1)
	s.PointerUp()
	if st := s.Settings(); st.PanX != 5 || st.PanY != 11 {
		t.Errorf("pan = (%v,%v), want (5,11)", st.PanX, st.PanY)
	}
}

func TestArrangementDeterministic(t *testing.T) {
	s := New()
	s.SetImage(testImage(300, 200))

	a := s.Arrangement()
	b := s.Arrangement()
	if len(a) != palette.Size {
		t.Fatalf("arrangement length = %d, want %d", len(a), palette.Size)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("arrangement unstable at same seed:\n  %v\n  %v", a, b)
		}
	}
}

func TestLightIndicatorOpposesShadow(t *testing.T) {
	s := New()
	st := s.Settings()
	st.ShadowAngle = 135
	s.Apply(st)
	if got := s.LightIndicator(); got != 315 {
		t.Errorf("LightIndicator = %v, want 315", got)
	}

	// Aiming the light right places the shadow on the left.
	s.PointLight(1, 0)
	if got := s.Settings().ShadowAngle; got != 180 {
		t.Errorf("ShadowAngle = %v, want 180", got)
	}
	if got := s.LightIndicator(); got != 0 {
		t.Errorf("LightIndicator = %v, want 0", got)
	}
}

func TestApplySuggestion(t *testing.T) {
	s := New()
	if err := s.ApplySuggestion("linear-gradient(120deg, #aabbcc, #ddeeff)", 55); err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	st := s.Settings()
	if st.BackgroundKind != style.BackgroundAI {
		t.Errorf("kind = %q, want ai", st.BackgroundKind)
	}
	if st.Shadow != 55 {
		t.Errorf("shadow = %v, want 55", st.Shadow)
	}

	// Shadow outside range clamps rather than failing.
	if err := s.ApplySuggestion("#aabbcc", 250); err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	if got := s.Settings().Shadow; got != 100 {
		t.Errorf("shadow = %v, want clamped 100", got)
	}
}

func TestApplySuggestionRejectsBadSpec(t *testing.T) {
	s := New()
	before := s.Settings()
	if err := s.ApplySuggestion("chartreuse-vibes", 55); err == nil {
		t.Fatal("expected error for malformed background spec")
	}
	if s.Settings() != before {
		t.Errorf("failed suggestion changed settings: %+v", s.Settings())
	}
}
