// Package extractor finds the card thumbnails in a character list screenshot.
//
// The screenshot is expected to show a grid of square portraits inside a mostly white panel.
// Extraction runs three contour passes:
//
//  1. the largest near-white region is taken as the panel holding the grid;
//  2. dark shapes inside the panel are found and their bounding boxes redrawn as solid blocks,
//     merging fragmented outlines;
//  3. the blocks are filtered to those that are square and close to the median width.
//
// The remaining rectangles are cropped out of the original colour screenshot. No grid, or no
// surviving candidate, yields an empty result rather than an error.
package extractor

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	"thumbnail-matcher/geometry"
)

// ErrInvalidDimensions is returned for screenshots with zero width or height.
var ErrInvalidDimensions = geometry.ErrInvalidDimensions

// Layout is the geometry found in a screenshot.
type Layout struct {
	// Grid is the panel holding the thumbnails, in screenshot coordinates.
	Grid geometry.Rect
	// Found is false when no panel was detected.
	Found bool
	// Thumbnails are relative to Grid, in contour discovery order.
	Thumbnails []geometry.Rect
}

// Absolute returns the thumbnail rectangles in screenshot coordinates.
func (l Layout) Absolute() []geometry.Rect {
	rects := make([]geometry.Rect, len(l.Thumbnails))
	for i, r := range l.Thumbnails {
		rects[i] = r.Offset(l.Grid.Left, l.Grid.Top)
	}
	return rects
}

// Extractor locates and crops thumbnails. It holds no state besides its configuration and is
// safe for concurrent use.
type Extractor struct {
	cfg Config
}

// New creates an extractor; zero config fields take their defaults.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg.withDefaults()}
}

// ExtractThumbnails runs an extractor with the default configuration.
func ExtractThumbnails(img image.Image) ([]image.Image, error) {
	return New(DefaultConfig()).Extract(img)
}

// Extract returns one cropped colour image per detected thumbnail. The order follows contour
// discovery; callers needing reading order must sort the Locate result themselves.
func (e *Extractor) Extract(img image.Image) ([]image.Image, error) {
	layout, err := e.Locate(img)
	if err != nil {
		return nil, err
	}

	origin := img.Bounds().Min
	thumbnails := make([]image.Image, 0, len(layout.Thumbnails))
	for _, r := range layout.Absolute() {
		thumbnails = append(thumbnails, imaging.Crop(img, r.Offset(origin.X, origin.Y).Image()))
	}
	return thumbnails, nil
}

// Locate runs the three passes and returns the detected geometry without cropping.
func (e *Extractor) Locate(img image.Image) (Layout, error) {
	if err := geometry.CheckDimensions(img.Bounds()); err != nil {
		return Layout{}, err
	}

	gray, err := grayscaleMat(img)
	if err != nil {
		return Layout{}, fmt.Errorf("convert screenshot: %w", err)
	}
	defer gray.Close()

	grid, ok := e.locateGrid(gray)
	if !ok {
		slog.Debug("no thumbnail grid found")
		return Layout{}, nil
	}

	return Layout{
		Grid:       grid,
		Found:      true,
		Thumbnails: e.segmentGrid(gray, grid),
	}, nil
}

// locateGrid finds the bounding box of the largest near-white outer contour.
func (e *Extractor) locateGrid(gray gocv.Mat) (geometry.Rect, bool) {
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(gray, &binary, e.cfg.WhiteThreshold, 255, gocv.ThresholdBinary)

	var largest []image.Point
	largestArea := -1
	for _, points := range outerContours(binary) {
		r, err := geometry.BoundingRect(points)
		if err != nil {
			continue
		}
		if area := r.Area(); area > largestArea {
			largestArea = area
			largest = points
		}
	}
	if largest == nil {
		return geometry.Rect{}, false
	}

	// Anti-aliased panel edges leave jagged steps; simplify before bounding
	grid, err := simplifiedBounds(largest, e.cfg.SimplifyTolerance)
	if err != nil || grid.Empty() {
		return geometry.Rect{}, false
	}

	slog.Debug("thumbnail grid located", "grid", grid, "contour_points", len(largest))
	return grid, true
}

// segmentGrid finds the thumbnail rectangles inside the grid, relative to it.
func (e *Extractor) segmentGrid(gray gocv.Mat, grid geometry.Rect) []geometry.Rect {
	region := gray.Region(grid.Image())
	defer region.Close()

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(region, &binary, e.cfg.WhiteThreshold, 255, gocv.ThresholdBinaryInv)

	// Portrait outlines often break into several fragments; redraw each fragment's bounds as a
	// solid block so overlapping fragments merge into one shape
	fragments := outerRects(binary)
	canvas := fillRects(fragments, grid.Width(), grid.Height())
	defer canvas.Close()

	candidates := outerRects(canvas)
	kept := e.filterCandidates(candidates)

	slog.Debug("thumbnail candidates filtered",
		"fragments", len(fragments), "candidates", len(candidates), "kept", len(kept))
	return kept
}

// filterCandidates keeps square-like rectangles wider than the retention fraction of the
// median width.
func (e *Extractor) filterCandidates(candidates []geometry.Rect) []geometry.Rect {
	widths := make([]int, len(candidates))
	for i, r := range candidates {
		widths[i] = r.Width()
	}
	minWidth := geometry.Median(widths) * e.cfg.WidthRetention

	kept := make([]geometry.Rect, 0, len(candidates))
	for _, r := range candidates {
		if float64(r.Width()) > minWidth && r.IsSquareLikeWithin(e.cfg.SquareTolerance) {
			kept = append(kept, r)
		}
	}
	return kept
}
