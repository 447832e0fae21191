package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shotframe/shotframe/internal/manifest"
	"github.com/shotframe/shotframe/internal/palette"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a shotframe manifest and check exported files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(manifestPath)
	errors := validateManifest(&m, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d renders — all files present\n", m.Stats.TotalRenders)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SchemaVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	seenPaths := map[string]string{}
	for key, r := range m.Renders {
		if r.Source.Width <= 0 || r.Source.Height <= 0 {
			errs = append(errs, fmt.Sprintf("render %q: invalid source dimensions %dx%d",
				key, r.Source.Width, r.Source.Height))
		}

		if len(r.Palette) != palette.Size {
			errs = append(errs, fmt.Sprintf("render %q: palette has %d colors, want %d",
				key, len(r.Palette), palette.Size))
		}
		for i, c := range r.Palette {
			if !validHex(c) {
				errs = append(errs, fmt.Sprintf("render %q: palette[%d] is not a hex color: %q", key, i, c))
			}
		}
		if r.Dominant == "" {
			errs = append(errs, fmt.Sprintf("render %q: missing dominant color", key))
		}

		a := r.Artifact
		if a.Format == "" {
			errs = append(errs, fmt.Sprintf("render %q: empty artifact format", key))
		}
		if a.Width <= 0 || a.Height <= 0 {
			errs = append(errs, fmt.Sprintf("render %q: invalid artifact dimensions %dx%d",
				key, a.Width, a.Height))
		}
		if a.Digest == "" {
			errs = append(errs, fmt.Sprintf("render %q: missing digest", key))
		}
		if a.Path == "" {
			errs = append(errs, fmt.Sprintf("render %q: missing artifact path", key))
			continue
		}

		if prev, dup := seenPaths[a.Path]; dup {
			errs = append(errs, fmt.Sprintf("render %q: path %q already used by %q", key, a.Path, prev))
		}
		seenPaths[a.Path] = key

		fullPath := filepath.Join(baseDir, a.Path)
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("render %q: file not found: %s", key, a.Path))
		} else if a.Size > 0 && info.Size() != a.Size {
			errs = append(errs, fmt.Sprintf("render %q: size mismatch: manifest=%d, disk=%d",
				key, a.Size, info.Size()))
		}
	}

	// Verify stats consistency.
	if m.Stats.TotalRenders != len(m.Renders) {
		errs = append(errs, fmt.Sprintf("stats.total_renders mismatch: %d != %d",
			m.Stats.TotalRenders, len(m.Renders)))
	}
	if m.Stats.TotalFailures != len(m.Failures) {
		errs = append(errs, fmt.Sprintf("stats.total_failures mismatch: %d != %d",
			m.Stats.TotalFailures, len(m.Failures)))
	}

	return errs
}

func validHex(c string) bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	return strings.IndexFunc(c[1:], func(r rune) bool {
		return !strings.ContainsRune("0123456789abcdef", r)
	}) == -1
}
