package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/style"
)

var presetsFromFile string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in and user-defined style presets",
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().StringVar(&presetsFromFile, "presets-file", "", "TOML file with extra presets")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	var presets []style.Preset
	for _, name := range style.PresetNames() {
		presets = append(presets, style.GetPreset(name))
	}
	if presetsFromFile != "" {
		loaded, err := style.LoadPresets(presetsFromFile)
		if err != nil {
			return err
		}
		presets = append(presets, loaded...)
	}

	fmt.Println()
	fmt.Printf("  %-12s %8s %6s %7s %7s %6s  %-12s %-5s %s\n",
		"NAME", "PADDING", "INSET", "RADIUS", "SHADOW", "ANGLE", "BACKGROUND", "RATIO", "SCALE")
	for _, p := range presets {
		s := p.Settings
		fmt.Printf("  %-12s %8g %6g %7g %7g %6g  %-12s %-5s %g%%\n",
			p.Name, s.Padding, s.Inset, s.CornerRadius, s.Shadow, s.ShadowAngle,
			s.BackgroundKind, s.AspectRatio.String(), s.Scale)
	}
	fmt.Println()
	return nil
}
