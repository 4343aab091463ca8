package extractor

import "thumbnail-matcher/geometry"

// Detection settings
const (
	// Grayscale level above which a pixel is treated as panel white
	DefaultWhiteThreshold = 250

	// Douglas-Peucker epsilon as a fraction of the grid contour perimeter
	DefaultSimplifyTolerance = 0.1

	// Fraction of the median candidate width a thumbnail must exceed
	DefaultWidthRetention = 0.9

	// Largest |width-height|/width accepted as a portrait shape
	DefaultSquareTolerance = geometry.SquareTolerance
)

// Config holds the tuned thresholds of the extraction passes.
type Config struct {
	WhiteThreshold    float32
	SimplifyTolerance float64
	WidthRetention    float64
	SquareTolerance   float64
}

// DefaultConfig returns the thresholds tuned for character list screenshots.
func DefaultConfig() Config {
	return Config{
		WhiteThreshold:    DefaultWhiteThreshold,
		SimplifyTolerance: DefaultSimplifyTolerance,
		WidthRetention:    DefaultWidthRetention,
		SquareTolerance:   DefaultSquareTolerance,
	}
}

func (c Config) withDefaults() Config {
	if c.WhiteThreshold <= 0 || c.WhiteThreshold >= 255 {
		c.WhiteThreshold = DefaultWhiteThreshold
	}
	if c.SimplifyTolerance <= 0 {
		c.SimplifyTolerance = DefaultSimplifyTolerance
	}
	if c.WidthRetention <= 0 {
		c.WidthRetention = DefaultWidthRetention
	}
	if c.SquareTolerance <= 0 {
		c.SquareTolerance = DefaultSquareTolerance
	}
	return c
}
