package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	logger  = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
)

var rootCmd = &cobra.Command{
	Use:   "shotframe",
	Short: "Frame screenshots on palette-matched backgrounds",
	Long: `shotframe — wraps screenshots in rounded cards over soft backgrounds
derived from the image's own colors.

Extracts a muted five-color palette, solves card and export geometry,
and renders shareable PNG/JPEG/WebP/AVIF images — one file or a whole
directory at a time. Output filenames are content-addressed:
<key>.<w>x<h>.<hash>.ext`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"shotframe %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
