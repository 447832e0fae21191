package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/compose"
	"github.com/shotframe/shotframe/internal/layout"
)

var (
	layoutStyle     styleFlags
	layoutWidth     float64
	layoutHeight    float64
	layoutContainer string
	layoutJSON      bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Solve card and export geometry without rendering",
	Long: `Prints the geometry the renderer would use for an image of the given
natural size: display size, card size, export size in layout units and
output pixels, the shadow parameters, and the fit scale for an optional
preview container.`,
	RunE: runLayout,
}

func init() {
	layoutStyle.register(layoutCmd)
	f := layoutCmd.Flags()
	f.Float64Var(&layoutWidth, "width", 0, "natural image width")
	f.Float64Var(&layoutHeight, "height", 0, "natural image height")
	f.StringVar(&layoutContainer, "container", "", `preview container as "WxH"`)
	f.BoolVar(&layoutJSON, "json", false, "JSON output")
	layoutCmd.MarkFlagRequired("width")
	layoutCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, _ []string) error {
	settings, _, err := layoutStyle.settings(cmd)
	if err != nil {
		return err
	}

	l := layout.Compute(settings, layout.Size{W: layoutWidth, H: layoutHeight})
	sp := layout.Shadow(settings.Shadow, settings.ShadowAngle)
	light := layout.LightAngle(settings.ShadowAngle)
	pxW := int(math.Round(l.Export.W * compose.Density))
	pxH := int(math.Round(l.Export.H * compose.Density))

	fit := 0.0
	if layoutContainer != "" {
		c, err := parseContainer(layoutContainer)
		if err != nil {
			return fmt.Errorf("--container: %w", err)
		}
		fit = layout.FitScale(c, l)
	}

	if layoutJSON {
		type size struct {
			W float64 `json:"w"`
			H float64 `json:"h"`
		}
		out := struct {
			Image  size `json:"image"`
			Card   size `json:"card"`
			Export size `json:"export"`
			PixelW int  `json:"pixel_w"`
			PixelH int  `json:"pixel_h"`
			Shadow struct {
				OffsetX int     `json:"offset_x"`
				OffsetY int     `json:"offset_y"`
				Blur    float64 `json:"blur"`
				Spread  float64 `json:"spread"`
				Alpha   float64 `json:"alpha"`
			} `json:"shadow"`
			Light     float64 `json:"light_angle"`
			FitScale  float64 `json:"fit_scale,omitempty"`
			Container string  `json:"container,omitempty"`
		}{
			Image:     size{l.Image.W, l.Image.H},
			Card:      size{l.Card.W, l.Card.H},
			Export:    size{l.Export.W, l.Export.H},
			PixelW:    pxW,
			PixelH:    pxH,
			Light:     light,
			FitScale:  fit,
			Container: layoutContainer,
		}
		out.Shadow.OffsetX = sp.OffsetX
		out.Shadow.OffsetY = sp.OffsetY
		out.Shadow.Blur = sp.Blur
		out.Shadow.Spread = sp.Spread
		out.Shadow.Alpha = sp.Alpha
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println()
	fmt.Printf("  Image:   %g x %g  (scale %g%%)\n", l.Image.W, l.Image.H, settings.Scale)
	fmt.Printf("  Card:    %g x %g\n", l.Card.W, l.Card.H)
	fmt.Printf("  Export:  %g x %g  (ratio %s)\n", l.Export.W, l.Export.H, settings.AspectRatio)
	fmt.Printf("  Pixels:  %d x %d  (%dx density)\n", pxW, pxH, compose.Density)
	fmt.Printf("  Shadow:  offset (%d, %d)  blur %.1f  spread %.1f  alpha %.2f\n",
		sp.OffsetX, sp.OffsetY, sp.Blur, sp.Spread, sp.Alpha)
	fmt.Printf("  Light:   %g°\n", light)
	if layoutContainer != "" {
		fmt.Printf("  Fit:     %.3f  (container %s)\n", fit, layoutContainer)
	}
	fmt.Println()
	return nil
}

func parseContainer(s string) (layout.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return layout.Size{}, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return layout.Size{}, fmt.Errorf("width %q: %w", ws, err)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return layout.Size{}, fmt.Errorf("height %q: %w", hs, err)
	}
	return layout.Size{W: w, H: h}, nil
}
