package style

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// Preset is a named, complete style.
type Preset struct {
	Name     string
	Settings Settings
}

// Built-in presets.
var presets = map[string]Preset{
	"default": {
		Name:     "default",
		Settings: Default(),
	},
	"minimal": {
		Name: "minimal",
		Settings: Settings{
			Padding:        24,
			Inset:          0,
			CornerRadius:   8,
			Shadow:         10,
			ShadowAngle:    135,
			BackgroundKind: BackgroundTransparent,
			Scale:          100,
			MeshSeed:       1,
		},
	},
	"social": {
		Name: "social",
		Settings: Settings{
			Padding:        96,
			Inset:          20,
			CornerRadius:   16,
			Shadow:         35,
			ShadowAngle:    135,
			BackgroundKind: BackgroundMesh,
			AspectRatio:    AspectRatio{W: 1, H: 1},
			Scale:          100,
			MeshSeed:       1,
		},
	},
	"showcase": {
		Name: "showcase",
		Settings: Settings{
			Padding:        120,
			Inset:          24,
			CornerRadius:   20,
			Shadow:         60,
			ShadowAngle:    120,
			BackgroundKind: BackgroundPreset,
			Background:     "linear-gradient(135deg, #c7ceea, #f3e5f5)",
			Scale:          100,
			MeshSeed:       1,
		},
	},
}

// GetPreset returns a preset by name. Falls back to default if unknown.
func GetPreset(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["default"]
	p.Name = name // preserve requested name
	return p
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// presetSpec is the TOML shape of one preset. Fields absent from the file
// keep the default style's value.
type presetSpec struct {
	Padding        float64 `toml:"padding"`
	Inset          float64 `toml:"inset"`
	CornerRadius   float64 `toml:"corner_radius"`
	Shadow         float64 `toml:"shadow"`
	ShadowAngle    float64 `toml:"shadow_angle"`
	BackgroundKind string  `toml:"background_kind"`
	Background     string  `toml:"background"`
	AspectRatio    string  `toml:"aspect_ratio"`
	Scale          float64 `toml:"scale"`
	PanX           float64 `toml:"pan_x"`
	PanY           float64 `toml:"pan_y"`
	MeshSeed       int64   `toml:"mesh_seed"`
}

func specFrom(s Settings) presetSpec {
	return presetSpec{
		Padding:        s.Padding,
		Inset:          s.Inset,
		CornerRadius:   s.CornerRadius,
		Shadow:         s.Shadow,
		ShadowAngle:    s.ShadowAngle,
		BackgroundKind: string(s.BackgroundKind),
		Background:     s.Background,
		AspectRatio:    s.AspectRatio.String(),
		Scale:          s.Scale,
		PanX:           s.PanX,
		PanY:           s.PanY,
		MeshSeed:       s.MeshSeed,
	}
}

func (ps presetSpec) settings() (Settings, error) {
	ratio, err := ParseAspectRatio(ps.AspectRatio)
	if err != nil {
		return Settings{}, err
	}
	kind := BackgroundKind(ps.BackgroundKind)
	if !kind.Valid() {
		return Settings{}, fmt.Errorf("background kind %q: want mesh, custom, preset, ai or transparent", ps.BackgroundKind)
	}
	if kind == BackgroundCustom || kind == BackgroundPreset || kind == BackgroundAI {
		if _, err := ParseBackground(ps.Background); err != nil {
			return Settings{}, err
		}
	}
	s := Settings{
		Padding:        ps.Padding,
		Inset:          ps.Inset,
		CornerRadius:   ps.CornerRadius,
		Shadow:         ps.Shadow,
		ShadowAngle:    ps.ShadowAngle,
		BackgroundKind: kind,
		Background:     ps.Background,
		AspectRatio:    ratio,
		Scale:          ps.Scale,
		PanX:           ps.PanX,
		PanY:           ps.PanY,
		MeshSeed:       ps.MeshSeed,
	}
	return s.Clamp(), nil
}

// LoadPresets reads user presets from a TOML file:
//
//	[presets.brand]
//	padding = 80
//	background_kind = "custom"
//	background = "#f4f1ec"
//
// Each preset starts from the default style, so files only need to list
// the fields they change. Names are returned sorted for stable listings.
func LoadPresets(path string) ([]Preset, error) {
	var raw struct {
		Presets map[string]toml.Primitive `toml:"presets"`
	}
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}

	names := make([]string, 0, len(raw.Presets))
	for name := range raw.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		spec := specFrom(Default())
		if err := md.PrimitiveDecode(raw.Presets[name], &spec); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		s, err := spec.settings()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out = append(out, Preset{Name: name, Settings: s})
	}
	return out, nil
}
