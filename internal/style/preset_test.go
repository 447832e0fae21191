package style

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestGetPresetFallback(t *testing.T) {
	p := GetPreset("no-such-preset")
	if p.Name != "no-such-preset" {
		t.Errorf("fallback should keep requested name, got %q", p.Name)
	}
	if p.Settings != Default() {
		t.Errorf("fallback settings = %+v, want default", p.Settings)
	}
}

func TestBuiltinPresetsAreClamped(t *testing.T) {
	for _, name := range PresetNames() {
		p := GetPreset(name)
		if p.Settings != p.Settings.Clamp() {
			t.Errorf("preset %q is out of range: %+v", name, p.Settings)
		}
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("PresetNames not sorted: %v", names)
	}
	if len(names) < 4 {
		t.Errorf("expected at least 4 built-in presets, got %v", names)
	}
}

func writePresetFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	return path
}

func TestLoadPresets(t *testing.T) {
	path := writePresetFile(t, `
[presets.brand]
padding = 80
background_kind = "custom"
background = "#f4f1ec"
aspect_ratio = "16/9"

[presets.tall]
aspect_ratio = "9/16"
shadow = 50
`)
	got, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d presets, want 2", len(got))
	}
	// Sorted by name: brand, tall.
	brand := got[0]
	if brand.Name != "brand" {
		t.Fatalf("first preset = %q, want brand", brand.Name)
	}
	if brand.Settings.Padding != 80 {
		t.Errorf("brand padding = %v, want 80", brand.Settings.Padding)
	}
	if brand.Settings.BackgroundKind != BackgroundCustom {
		t.Errorf("brand kind = %q, want custom", brand.Settings.BackgroundKind)
	}
	if brand.Settings.AspectRatio != (AspectRatio{16, 9}) {
		t.Errorf("brand ratio = %v, want 16/9", brand.Settings.AspectRatio)
	}
	// Unlisted fields keep the default style's values.
	if brand.Settings.Inset != Default().Inset {
		t.Errorf("brand inset = %v, want default %v", brand.Settings.Inset, Default().Inset)
	}

	tall := got[1]
	if tall.Settings.Shadow != 50 {
		t.Errorf("tall shadow = %v, want 50", tall.Settings.Shadow)
	}
	if tall.Settings.AspectRatio != (AspectRatio{9, 16}) {
		t.Errorf("tall ratio = %v, want 9/16", tall.Settings.AspectRatio)
	}
}

func TestLoadPresetsRejectsBadKind(t *testing.T) {
	path := writePresetFile(t, `
[presets.broken]
background_kind = "plaid"
`)
	if _, err := LoadPresets(path); err == nil {
		t.Fatal("expected error for unknown background kind")
	}
}

func TestLoadPresetsRejectsBadRatio(t *testing.T) {
	path := writePresetFile(t, `
[presets.broken]
aspect_ratio = "16:9"
`)
	if _, err := LoadPresets(path); err == nil {
		t.Fatal("expected error for malformed aspect ratio")
	}
}

func TestLoadPresetsRejectsBadBackgroundSpec(t *testing.T) {
	path := writePresetFile(t, `
[presets.broken]
background_kind = "custom"
background = "nope"
`)
	if _, err := LoadPresets(path); err == nil {
		t.Fatal("expected error for malformed background spec")
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
