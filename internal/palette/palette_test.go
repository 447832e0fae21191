package palette

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// fillRect paints a solid region into an NRGBA image.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Rect, c)
	return img
}

func TestDeriveSolid(t *testing.T) {
	img := solid(200, 100, color.NRGBA{100, 150, 200, 255})
	p := Derive(img)

	// One bin: channels floored to 96/128/192, then muted.
	want := Muted(96, 128, 192)
	if p.Colors[0] != want {
		t.Errorf("Colors[0] = %s, want %s", p.Colors[0], want)
	}
	if p.Dominant != p.Colors[0] {
		t.Errorf("Dominant = %s, want Colors[0] = %s", p.Dominant, p.Colors[0])
	}
	// Remaining slots cycle the fallback list from position 1.
	for i := 1; i < Size; i++ {
		if p.Colors[i] != fallbackColors[i] {
			t.Errorf("Colors[%d] = %s, want fallback %s", i, p.Colors[i], fallbackColors[i])
		}
	}
}

func TestDeriveFrequencyOrder(t *testing.T) {
	// Three hues at 60% / 30% / 10% of the area.
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fillRect(img, image.Rect(0, 0, 100, 60), color.NRGBA{200, 100, 100, 255})
	fillRect(img, image.Rect(0, 60, 100, 90), color.NRGBA{100, 200, 100, 255})
	fillRect(img, image.Rect(0, 90, 100, 100), color.NRGBA{100, 100, 200, 255})

	p := Derive(img)
	want := []string{
		Muted(192, 96, 96),
		Muted(96, 192, 96),
		Muted(96, 96, 192),
	}
	for i, w := range want {
		if p.Colors[i] != w {
			t.Errorf("Colors[%d] = %s, want %s", i, p.Colors[i], w)
		}
	}
}

func TestDeriveSkipsDarkAndBright(t *testing.T) {
	// Top half brightness 10, bottom half 250; both outside (60,230).
	img := image.NewNRGBA(image.Rect(0, 0, 80, 80))
	fillRect(img, image.Rect(0, 0, 80, 40), color.NRGBA{10, 10, 10, 255})
	fillRect(img, image.Rect(0, 40, 80, 80), color.NRGBA{250, 250, 250, 255})

	if p := Derive(img); p != Fallback() {
		t.Errorf("dark+bright image should yield the fallback palette, got %+v", p)
	}
}

func TestDeriveSkipsTransparent(t *testing.T) {
	img := solid(60, 60, color.NRGBA{120, 130, 140, 40})
	if p := Derive(img); p != Fallback() {
		t.Errorf("transparent image should yield the fallback palette, got %+v", p)
	}
}

func TestDeriveNilImage(t *testing.T) {
	if p := Derive(nil); p != Fallback() {
		t.Errorf("nil image should yield the fallback palette, got %+v", p)
	}
}

func TestDeriveAlwaysFiveHexColors(t *testing.T) {
	imgs := map[string]image.Image{
		"solid":  solid(64, 64, color.NRGBA{90, 120, 180, 255}),
		"tiny":   solid(1, 1, color.NRGBA{128, 128, 128, 255}),
		"empty":  image.NewNRGBA(image.Rect(0, 0, 0, 0)),
		"bright": solid(64, 64, color.NRGBA{255, 255, 255, 255}),
	}
	for name, img := range imgs {
		p := Derive(img)
		for i, c := range p.Colors {
			if len(c) != 7 || c[0] != '#' {
				t.Errorf("%s: Colors[%d] = %q, want #rrggbb", name, i, c)
			}
			if c != strings.ToLower(c) {
				t.Errorf("%s: Colors[%d] = %q, want lowercase", name, i, c)
			}
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 120, 90))
	for y := 0; y < 90; y++ {
		for x := 0; x < 120; x++ {
			img.SetNRGBA(x, y, color.NRGBA{byte(80 + x), byte(90 + y), 150, 255})
		}
	}
	a, b := Derive(img), Derive(img)
	if a != b {
		t.Errorf("Derive is not deterministic:\n  %+v\n  %+v", a, b)
	}
}

func TestMutedStaysInBand(t *testing.T) {
	const tol = 0.011 // 8-bit rounding
	for r := 0; r < 256; r += 37 {
		for g := 0; g < 256; g += 37 {
			for b := 0; b < 256; b += 37 {
				hex := Muted(byte(r), byte(g), byte(b))
				c, err := colorful.Hex(hex)
				if err != nil {
					t.Fatalf("Muted(%d,%d,%d) = %q: %v", r, g, b, hex, err)
				}
				_, s, l := c.Hsl()
				if s < 0.05-tol || s > 0.15+tol {
					t.Errorf("Muted(%d,%d,%d): saturation %v outside [0.05,0.15]", r, g, b, s)
				}
				if l < 0.75-tol || l > 0.85+tol {
					t.Errorf("Muted(%d,%d,%d): lightness %v outside [0.75,0.85]", r, g, b, l)
				}
			}
		}
	}
}

func TestMutedKeepsHue(t *testing.T) {
	in := colorful.Color{R: 200.0 / 255, G: 80.0 / 255, B: 80.0 / 255}
	hIn, _, _ := in.Hsl()

	out, err := colorful.Hex(Muted(200, 80, 80))
	if err != nil {
		t.Fatal(err)
	}
	hOut, _, _ := out.Hsl()

	diff := hIn - hOut
	if diff < 0 {
		diff = -diff
	}
	if diff > 4 {
		t.Errorf("hue moved from %v to %v", hIn, hOut)
	}
}

func TestShuffleGolden(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}

	got1 := Shuffle(in, 1)
	want1 := []string{"d", "b", "c", "a", "e"}
	for i := range want1 {
		if got1[i] != want1[i] {
			t.Fatalf("Shuffle(seed=1) = %v, want %v", got1, want1)
		}
	}

	got2 := Shuffle(in, 2)
	want2 := []string{"a", "e", "c", "d", "b"}
	for i := range want2 {
		if got2[i] != want2[i] {
			t.Fatalf("Shuffle(seed=2) = %v, want %v", got2, want2)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	in := []string{"#111111", "#222222", "#333333", "#444444", "#555555"}
	a := Shuffle(in, 42)
	b := Shuffle(in, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave different orders:\n  %v\n  %v", a, b)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	Shuffle(in, 9)
	if in[0] != "a" || in[4] != "e" {
		t.Errorf("input mutated: %v", in)
	}
}

func TestShufflePadsByRepetition(t *testing.T) {
	out := Shuffle([]string{"x", "y"}, 3)
	if len(out) != Size {
		t.Fatalf("len = %d, want %d", len(out), Size)
	}
	counts := map[string]int{}
	for _, c := range out {
		counts[c]++
	}
	if counts["x"] != 3 || counts["y"] != 2 {
		t.Errorf("padding multiset wrong: %v", counts)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	out := Shuffle(in, 77)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	counts := map[string]int{}
	for _, c := range out {
		counts[c]++
	}
	for _, c := range in {
		if counts[c] != 1 {
			t.Errorf("color %q appears %d times", c, counts[c])
		}
	}
}

func TestShuffleEmptyUsesFallback(t *testing.T) {
	out := Shuffle(nil, 1)
	if len(out) != Size {
		t.Fatalf("len = %d, want %d", len(out), Size)
	}
	valid := map[string]bool{}
	for _, c := range fallbackColors {
		valid[c] = true
	}
	for _, c := range out {
		if !valid[c] {
			t.Errorf("unexpected color %q in fallback shuffle", c)
		}
	}
}
