package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/manifest"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a rendered batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for the manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "shotframe.manifest.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	printStats(&m)
	return nil
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Preset:           %s\n", m.Preset)
	if m.RunInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.RunInfo.Workers)
		fmt.Printf("  Format:           %s (quality %d)\n", m.RunInfo.Format, m.RunInfo.Quality)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total renders:    %d\n", s.TotalRenders)
	if s.TotalFailures > 0 {
		fmt.Printf("  Total failures:   %d\n", s.TotalFailures)
	}
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))
	fmt.Println()

	// Per-format breakdown. Mixed formats happen when transparent
	// exports get swapped to PNG.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, r := range m.Renders {
		fs := formatStats[r.Artifact.Format]
		fs.count++
		fs.bytes += r.Artifact.Size
		formatStats[r.Artifact.Format] = fs
	}
	fmt.Println("  Format breakdown:")
	for _, f := range []string{"avif", "webp", "png", "jpeg"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	fmt.Println()

	// Mesh seed spread shows whether a batch was arranged uniformly.
	seedStats := map[int64]int{}
	for _, r := range m.Renders {
		seedStats[r.MeshSeed]++
	}
	var seeds []int64
	for s := range seedStats {
		seeds = append(seeds, s)
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })
	fmt.Println("  Seed breakdown:")
	for _, s := range seeds {
		fmt.Printf("    seed %-6d %4d renders\n", s, seedStats[s])
	}

	if len(m.Failures) > 0 {
		fmt.Println()
		fmt.Printf("  Failures (%d):\n", len(m.Failures))
		for _, f := range m.Failures {
			fmt.Printf("    ⚠ %s: %s\n", f.Source, f.Error)
		}
	}
	fmt.Println()
}
