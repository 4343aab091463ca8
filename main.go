// Command thumbmatch extracts card thumbnails from character list screenshots and computes
// perceptual hashes of thumbnail files.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"thumbnail-matcher/internal/config"
)

var logLevel = new(slog.LevelVar)

func main() {
	// Progress goes to stdout, logs to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := newRootCmd(cfg).Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "thumbmatch",
		Short:         "Find and fingerprint card thumbnails",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.Verbose {
				logLevel.Set(slog.LevelDebug)
			} else {
				logLevel.Set(slog.LevelInfo)
			}
		},
	}
	root.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print debug information")

	root.AddCommand(newHashCmd(cfg), newExtractCmd(cfg))
	return root
}
