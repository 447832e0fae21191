package style

import (
	"math"
	"testing"
)

func TestClampForcesRanges(t *testing.T) {
	s := Settings{
		Padding:        900,
		Inset:          -5,
		CornerRadius:   101,
		Shadow:         -1,
		ShadowAngle:    495, // wraps to 135
		BackgroundKind: BackgroundKind("sparkle"),
		Scale:          5,
		PanX:           math.NaN(),
	}
	c := s.Clamp()

	if c.Padding != 400 {
		t.Errorf("Padding = %v, want 400", c.Padding)
	}
	if c.Inset != 0 {
		t.Errorf("Inset = %v, want 0", c.Inset)
	}
	if c.CornerRadius != 100 {
		t.Errorf("CornerRadius = %v, want 100", c.CornerRadius)
	}
	if c.Shadow != 0 {
		t.Errorf("Shadow = %v, want 0", c.Shadow)
	}
	if c.ShadowAngle != 135 {
		t.Errorf("ShadowAngle = %v, want 135", c.ShadowAngle)
	}
	if c.BackgroundKind != BackgroundMesh {
		t.Errorf("BackgroundKind = %q, want mesh", c.BackgroundKind)
	}
	if c.Scale != 10 {
		t.Errorf("Scale = %v, want 10", c.Scale)
	}
	if c.PanX != 0 {
		t.Errorf("PanX = %v, want 0", c.PanX)
	}
}

func TestClampNegativeAngle(t *testing.T) {
	c := Settings{ShadowAngle: -90, Scale: 100}.Clamp()
	if c.ShadowAngle != 270 {
		t.Errorf("ShadowAngle = %v, want 270", c.ShadowAngle)
	}
}

func TestClampKeepsDefault(t *testing.T) {
	d := Default()
	if d.Clamp() != d {
		t.Errorf("Clamp changed the default style: %+v", d.Clamp())
	}
}

func TestClampInvalidRatio(t *testing.T) {
	c := Settings{Scale: 100, AspectRatio: AspectRatio{W: -3, H: 2}}.Clamp()
	if !c.AspectRatio.Auto() {
		t.Errorf("negative ratio survived Clamp: %v", c.AspectRatio)
	}
}

func TestParseAspectRatio(t *testing.T) {
	cases := []struct {
		in      string
		want    AspectRatio
		wantErr bool
	}{
		{"auto", AspectRatio{}, false},
		{"", AspectRatio{}, false},
		{"AUTO", AspectRatio{}, false},
		{"16/9", AspectRatio{16, 9}, false},
		{" 4 / 3 ", AspectRatio{4, 3}, false},
		{"1/1", AspectRatio{1, 1}, false},
		{"16:9", AspectRatio{}, true},
		{"0/5", AspectRatio{}, true},
		{"-1/2", AspectRatio{}, true},
		{"a/b", AspectRatio{}, true},
		{"3/", AspectRatio{}, true},
		{"1.5/1", AspectRatio{}, true},
	}
	for _, tc := range cases {
		got, err := ParseAspectRatio(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAspectRatio(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAspectRatio(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAspectRatio(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAspectRatioString(t *testing.T) {
	if got := (AspectRatio{}).String(); got != "auto" {
		t.Errorf("zero ratio String() = %q, want auto", got)
	}
	if got := (AspectRatio{16, 9}).String(); got != "16/9" {
		t.Errorf("String() = %q, want 16/9", got)
	}
}

func TestParseBackgroundSolid(t *testing.T) {
	b, err := ParseBackground("#aabbcc")
	if err != nil {
		t.Fatalf("ParseBackground: %v", err)
	}
	if !b.Solid() {
		t.Errorf("expected solid background, got %d stops", len(b.Stops))
	}
	if hex := b.Stops[0].Hex(); hex != "#aabbcc" {
		t.Errorf("stop = %s, want #aabbcc", hex)
	}
}

func TestParseBackgroundGradient(t *testing.T) {
	b, err := ParseBackground("linear-gradient(135deg, #aabbcc, #ddeeff, #112233)")
	if err != nil {
		t.Fatalf("ParseBackground: %v", err)
	}
	if b.Angle != 135 {
		t.Errorf("angle = %v, want 135", b.Angle)
	}
	if len(b.Stops) != 3 {
		t.Fatalf("stops = %d, want 3", len(b.Stops))
	}
	if b.Solid() {
		t.Error("gradient reported as solid")
	}
	if hex := b.Stops[2].Hex(); hex != "#112233" {
		t.Errorf("last stop = %s, want #112233", hex)
	}
}

func TestParseBackgroundErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"red",
		"#zz0011",
		"linear-gradient(135deg, #aabbcc)",      // one stop
		"linear-gradient(135deg, #aabbcc, red)", // bad stop
		"linear-gradient(fast, #aabbcc, #ddeeff)",
		"linear-gradient(90deg, #aabbcc, #ddeeff",
	} {
		if _, err := ParseBackground(in); err == nil {
			t.Errorf("ParseBackground(%q): expected error", in)
		}
	}
}
