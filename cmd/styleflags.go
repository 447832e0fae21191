package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/style"
)

// styleFlags holds the style flag values shared by render and layout.
// A flag only overrides the chosen preset when the user actually set
// it, so presets and flags compose instead of fighting.
type styleFlags struct {
	padding     float64
	inset       float64
	radius      float64
	shadow      float64
	shadowAngle float64
	bgKind      string
	background  string
	ratio       string
	scale       float64
	panX        float64
	panY        float64
	seed        int64
	preset      string
	presetsFile string
}

func (sf *styleFlags) register(cmd *cobra.Command) {
	d := style.Default()
	f := cmd.Flags()
	f.Float64Var(&sf.padding, "padding", d.Padding, "background padding around the card")
	f.Float64Var(&sf.inset, "inset", d.Inset, "card border around the image")
	f.Float64Var(&sf.radius, "radius", d.CornerRadius, "card corner radius")
	f.Float64Var(&sf.shadow, "shadow", d.Shadow, "shadow intensity 0-100")
	f.Float64Var(&sf.shadowAngle, "shadow-angle", d.ShadowAngle, "shadow direction in degrees")
	f.StringVar(&sf.bgKind, "bg", "", "background kind: mesh, custom, preset, ai, transparent")
	f.StringVar(&sf.background, "background", "", "background spec: #rrggbb or linear-gradient(...)")
	f.StringVar(&sf.ratio, "ratio", "", `export aspect ratio: "auto" or "W/H"`)
	f.Float64Var(&sf.scale, "scale", d.Scale, "image scale percent 10-300")
	f.Float64Var(&sf.panX, "pan-x", 0, "horizontal image offset inside the card")
	f.Float64Var(&sf.panY, "pan-y", 0, "vertical image offset inside the card")
	f.Int64Var(&sf.seed, "seed", d.MeshSeed, "mesh arrangement seed")
	f.StringVar(&sf.preset, "preset", "default", "style preset name")
	f.StringVar(&sf.presetsFile, "presets-file", "", "TOML file with extra presets")
}

// settings resolves the preset base, layers explicitly-set flags over
// it, and validates the parsed inputs. Malformed ratios, kinds and
// background specs are rejected here, before any geometry runs.
func (sf *styleFlags) settings(cmd *cobra.Command) (style.Settings, string, error) {
	s, name, err := sf.base()
	if err != nil {
		return style.Settings{}, "", err
	}

	f := cmd.Flags()
	if f.Changed("padding") {
		s.Padding = sf.padding
	}
	if f.Changed("inset") {
		s.Inset = sf.inset
	}
	if f.Changed("radius") {
		s.CornerRadius = sf.radius
	}
	if f.Changed("shadow") {
		s.Shadow = sf.shadow
	}
	if f.Changed("shadow-angle") {
		s.ShadowAngle = sf.shadowAngle
	}
	if f.Changed("scale") {
		s.Scale = sf.scale
	}
	if f.Changed("pan-x") {
		s.PanX = sf.panX
	}
	if f.Changed("pan-y") {
		s.PanY = sf.panY
	}
	if f.Changed("seed") {
		s.MeshSeed = sf.seed
	}

	if f.Changed("ratio") {
		ar, err := style.ParseAspectRatio(sf.ratio)
		if err != nil {
			return style.Settings{}, "", fmt.Errorf("--ratio: %w", err)
		}
		s.AspectRatio = ar
	}

	if f.Changed("background") {
		if _, err := style.ParseBackground(sf.background); err != nil {
			return style.Settings{}, "", fmt.Errorf("--background: %w", err)
		}
		s.Background = sf.background
		if !f.Changed("bg") {
			s.BackgroundKind = style.BackgroundCustom
		}
	}
	if f.Changed("bg") {
		kind := style.BackgroundKind(sf.bgKind)
		if !kind.Valid() {
			return style.Settings{}, "", fmt.Errorf("--bg: unknown kind %q (want mesh, custom, preset, ai or transparent)", sf.bgKind)
		}
		s.BackgroundKind = kind
	}

	return s.Clamp(), name, nil
}

// base picks the starting settings: a preset from --presets-file when
// it defines the requested name, a built-in otherwise.
func (sf *styleFlags) base() (style.Settings, string, error) {
	if sf.presetsFile != "" {
		presets, err := style.LoadPresets(sf.presetsFile)
		if err != nil {
			return style.Settings{}, "", fmt.Errorf("--presets-file: %w", err)
		}
		for _, p := range presets {
			if p.Name == sf.preset {
				return p.Settings, p.Name, nil
			}
		}
	}
	p := style.GetPreset(sf.preset)
	return p.Settings, p.Name, nil
}
