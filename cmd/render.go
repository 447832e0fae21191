package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/manifest"
	"github.com/shotframe/shotframe/internal/pipeline"
	"github.com/shotframe/shotframe/internal/style"
	"github.com/shotframe/shotframe/internal/suggest"
)

var (
	renderStyle    styleFlags
	renderOut      string
	renderFormat   string
	renderQuality  int
	renderWorkers  int
	renderManifest bool
	renderAI       bool
)

var renderCmd = &cobra.Command{
	Use:   "render <image|dir>",
	Short: "Frame screenshots and export them at 2x density",
	Long: `Derives a muted five-color palette from each screenshot and renders it
on a rounded card over the configured background.

A single file exports once; a directory runs every image through a
worker pool and writes a manifest describing the batch. Directory
output filenames are content-addressed: <key>.<w>x<h>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderStyle.register(renderCmd)
	f := renderCmd.Flags()
	f.StringVarP(&renderOut, "out", "o", "./shotframe_out", "output directory, or file path for single renders")
	f.StringVarP(&renderFormat, "format", "f", "png", "output format (png, jpeg, webp, avif)")
	f.IntVarP(&renderQuality, "quality", "q", 90, "encode quality 1-100")
	f.IntVarP(&renderWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	f.BoolVar(&renderManifest, "manifest", true, "write shotframe.manifest.json for directory runs")
	f.BoolVar(&renderAI, "ai", false, "consult the styling service (SHOTFRAME_SUGGEST_URL)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	settings, presetName, err := renderStyle.settings(cmd)
	if err != nil {
		return err
	}

	var client *suggest.Client
	if renderAI {
		if client = suggest.New(""); client == nil {
			return fmt.Errorf("--ai: no styling service configured, set %s", suggest.EnvURL)
		}
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat %s: %w", input, err)
	}
	if info.IsDir() {
		return renderDir(cmd, input, settings, presetName, client, start)
	}
	return renderFile(cmd, input, settings, presetName, client, start)
}

func renderDir(cmd *cobra.Command, inputDir string, settings style.Settings, presetName string, client *suggest.Client, start time.Time) error {
	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(renderOut)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	logger.Debug("batch render", "input", absInput, "output", absOutput, "preset", presetName)

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Preset:    presetName,
		Style:     settings,
		Format:    renderFormat,
		Quality:   renderQuality,
		Workers:   renderWorkers,
		Suggest:   client,
		Logger:    logger,
	})

	m, err := p.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if renderManifest {
		manifestPath := filepath.Join(absOutput, "shotframe.manifest.json")
		if err := manifest.WriteJSON(m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	printRenderReport(m, time.Since(start))
	return nil
}

func renderFile(cmd *cobra.Command, path string, settings style.Settings, presetName string, client *suggest.Client, start time.Time) error {
	src, err := pipeline.SourceFromFile(path)
	if err != nil {
		return err
	}

	// --out naming an image file means "write exactly here"; anything
	// else is treated as a directory for a content-addressed name.
	outDir := renderOut
	outFile := ""
	switch strings.ToLower(filepath.Ext(renderOut)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".avif":
		outFile = renderOut
		outDir = filepath.Dir(renderOut)
	}

	p := pipeline.New(pipeline.Config{
		OutputDir: outDir,
		Preset:    presetName,
		Style:     settings,
		Format:    renderFormat,
		Quality:   renderQuality,
		Suggest:   client,
		Logger:    logger,
	})

	e, err := p.ExportSource(cmd.Context(), src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var outPath string
	if outFile != "" {
		if err := os.WriteFile(outFile, e.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		outPath = outFile
	} else {
		rel, err := p.WriteExport(e, src.Key)
		if err != nil {
			return err
		}
		outPath = filepath.Join(outDir, rel)
	}

	a := e.Render.Artifact
	fmt.Println()
	fmt.Printf("  %s → %s\n", src.RelPath, outPath)
	fmt.Printf("  Export:   %dx%d %s, %s\n", a.Width, a.Height, a.Format, formatBytes(a.Size))
	fmt.Printf("  Card:     %g x %g\n", e.Render.CardW, e.Render.CardH)
	fmt.Printf("  Palette:  %s\n", strings.Join(e.Render.Palette, " "))
	fmt.Printf("  Dominant: %s\n", e.Render.Dominant)
	fmt.Printf("  Time:     %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Println()
	return nil
}

func printRenderReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Rendered:    %d screenshots\n", m.Stats.TotalRenders)
	if m.Stats.TotalFailures > 0 {
		fmt.Printf("  Failed:      %d\n", m.Stats.TotalFailures)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(m.Stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(m.Stats.TotalOutputBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.RunInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.RunInfo.Workers)
	}
	fmt.Println()

	if len(m.Renders) == 0 {
		return
	}

	// Largest exports first.
	type exportSize struct {
		key  string
		size int64
	}
	var items []exportSize
	for key, r := range m.Renders {
		items = append(items, exportSize{key, r.Artifact.Size})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].size > items[j].size
	})
	n := len(items)
	if n > 10 {
		n = 10
	}
	fmt.Printf("  Largest exports:\n")
	for _, it := range items[:n] {
		fmt.Printf("    %-40s %8s\n", truncKey(it.key, 40), formatBytes(it.size))
	}
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
