package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/palette"
)

var paletteJSON bool

var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract the muted five-color palette from a screenshot",
	Long: `Samples the image on a coarse grid, bins the readable midtones, mutes
the most frequent bins and prints the resulting five colors. The first
color is the dominant one.`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().BoolVar(&paletteJSON, "json", false, "JSON output")
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	pal := palette.Derive(img)

	if paletteJSON {
		out := struct {
			Dominant string   `json:"dominant"`
			Colors   []string `json:"colors"`
		}{pal.Dominant, pal.Colors[:]}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	b := img.Bounds()
	fmt.Printf("\n  Palette for %s (%dx%d):\n\n", args[0], b.Dx(), b.Dy())
	for i, c := range pal.Colors {
		if i == 0 {
			fmt.Printf("    %s  (dominant)\n", c)
			continue
		}
		fmt.Printf("    %s\n", c)
	}
	fmt.Println()
	return nil
}
