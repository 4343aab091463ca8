package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"thumbnail-matcher/internal/batch"
	"thumbnail-matcher/internal/config"
	"thumbnail-matcher/internal/store"
)

var errNoImages = errors.New("no image files found")

func newHashCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <folder|file>...",
		Short: "Compute perceptual hashes of thumbnail files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, cfg, args)
		},
	}
	cmd.Flags().StringVarP(&cfg.HashOutput, "output", "o", cfg.HashOutput, "JSON file receiving the hashes")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "Files hashed in parallel")
	return cmd
}

func runHash(cmd *cobra.Command, cfg *config.Config, args []string) error {
	// Expand directories
	var inputFiles []string
	for _, arg := range args {
		if !isDir(arg) {
			inputFiles = append(inputFiles, arg)
			continue
		}
		dirFiles, err := expandDirectory(arg)
		if err != nil {
			slog.Error("failed to list directory", "dir", arg, "error", err)
			continue
		}
		inputFiles = append(inputFiles, dirFiles...)
	}
	if len(inputFiles) == 0 {
		return errNoImages
	}

	results, err := batch.HashFiles(cmd.Context(), inputFiles, cfg.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := len(results)
	entries := make([]store.Entry, 0, total)
	for idx, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] WARNING: Skipping '%s': %v\n", idx+1, total, res.Path, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", res.Name(), res.Hash)
		entries = append(entries, store.NewEntry(res.Name(), res.Hash))
	}

	if err := store.Write(cfg.HashOutput, entries); err != nil {
		return err
	}
	slog.Info("wrote hashes", "path", cfg.HashOutput, "count", len(entries), "skipped", total-len(entries))
	return nil
}
