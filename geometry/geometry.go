// Package geometry holds the rectangle, statistics and dimension helpers shared by the extractor and the hasher.
package geometry

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
)

// SquareTolerance is the largest |width-height|/width still considered square-like.
const SquareTolerance = 0.1

// ErrNoPoints is returned when a bounding rectangle is requested for an empty point set.
var ErrNoPoints = errors.New("geometry: empty point set")

// Rect is an axis-aligned bounding rectangle in image space.
// Right and Bottom are the largest coordinates of the enclosed points, so a rectangle
// around a single point has zero width and height.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Area returns Width * Height.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Empty reports whether the rectangle is degenerate and unusable as a crop region.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Image converts r to the image.Rectangle of Width x Height pixels anchored at (Left, Top).
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width(), r.Top+r.Height())
}

// Offset translates r by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// IsSquareLike reports whether the height differs from the width by less than
// SquareTolerance of the width.
func (r Rect) IsSquareLike() bool {
	return r.isSquareLike(SquareTolerance)
}

func (r Rect) isSquareLike(tolerance float64) bool {
	w := float64(r.Width())
	if w <= 0 {
		return false
	}
	return math.Abs(w-float64(r.Height()))/w < tolerance
}

// IsSquareLikeWithin is IsSquareLike with a caller-supplied tolerance.
func (r Rect) IsSquareLikeWithin(tolerance float64) bool {
	return r.isSquareLike(tolerance)
}

// BoundingRect folds min/max over points, ignoring any rotation of the shape.
func BoundingRect(points []image.Point) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrNoPoints
	}

	r := Rect{
		Left:   math.MaxInt,
		Top:    math.MaxInt,
		Right:  math.MinInt,
		Bottom: math.MinInt,
	}
	for _, p := range points {
		r.Left = min(r.Left, p.X)
		r.Top = min(r.Top, p.Y)
		r.Right = max(r.Right, p.X)
		r.Bottom = max(r.Bottom, p.Y)
	}
	return r, nil
}

// Median returns the median of values without modifying them.
// Even-length input yields the mean of the two central elements; empty input yields 0.
func Median(values []int) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]int, n)
	copy(sorted, values)
	sort.Ints(sorted)

	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// ErrInvalidDimensions is returned for images with zero width or height.
var ErrInvalidDimensions = errors.New("invalid input dimensions")

// CheckDimensions returns an error wrapping ErrInvalidDimensions when b has no pixels.
func CheckDimensions(b image.Rectangle) error {
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}
	return nil
}
