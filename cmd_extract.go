package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"thumbnail-matcher/extractor"
	"thumbnail-matcher/internal/config"
)

func newExtractCmd(cfg *config.Config) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "extract <screenshot>",
		Short: "Crop card thumbnails out of a character list screenshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, cfg, args[0], debug)
		},
	}
	cmd.Flags().StringVarP(&cfg.ExtractOutput, "output", "o", cfg.ExtractOutput, "Directory receiving the thumbnails")
	cmd.Flags().BoolVar(&debug, "debug", false, "Also write an analysis image with the detected rectangles")
	return cmd
}

func runExtract(cmd *cobra.Command, cfg *config.Config, screenshot string, debug bool) error {
	outputDir := cfg.ExtractOutput
	if info, err := os.Stat(outputDir); err == nil && !info.IsDir() {
		return fmt.Errorf("output path %s exists and is not a directory", outputDir)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	img, err := imaging.Open(screenshot)
	if err != nil {
		return fmt.Errorf("open screenshot: %w", err)
	}
	slog.Debug("loaded screenshot", "file", screenshot, "size", img.Bounds().Size())

	ex := extractor.New(cfg.ExtractorConfig())
	layout, err := ex.Locate(img)
	if err != nil {
		return fmt.Errorf("locate thumbnails in %s: %w", screenshot, err)
	}

	name := stem(screenshot)
	out := cmd.OutOrStdout()

	if debug {
		analysis, err := extractor.DrawOverlay(img, layout)
		if err != nil {
			return fmt.Errorf("draw analysis: %w", err)
		}
		analysisPath := filepath.Join(outputDir, name+"-analysis.png")
		if err := imaging.Save(analysis, analysisPath); err != nil {
			return fmt.Errorf("write analysis: %w", err)
		}
		slog.Debug("wrote analysis", "path", analysisPath)
	}

	rects := layout.Absolute()
	if len(rects) == 0 {
		fmt.Fprintln(out, "No card thumbnails found")
		return nil
	}

	origin := img.Bounds().Min
	for i, r := range rects {
		thumb := imaging.Crop(img, r.Offset(origin.X, origin.Y).Image())
		outPath := filepath.Join(outputDir, fmt.Sprintf("%s-card-%d.png", name, i))
		if err := imaging.Save(thumb, outPath); err != nil {
			return fmt.Errorf("write thumbnail: %w", err)
		}
		slog.Debug("wrote thumbnail", "path", outPath, "rect", r)
	}

	fmt.Fprintf(out, "Found %d card thumbnails -> %s\n", len(rects), outputDir)
	return nil
}
