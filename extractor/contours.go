package extractor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"

	"thumbnail-matcher/geometry"
)

// Index of the parent contour inside a hierarchy entry (next, previous, first child, parent).
const hierarchyParent = 3

var foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// outerContours returns the boundary points of every outer contour of a binary image.
// Hole contours are dropped.
func outerContours(binary gocv.Mat) [][]image.Point {
	hierarchy := gocv.NewMat()
	defer hierarchy.Close()

	// Two-level retrieval: top level entries are outer borders, their children are holes
	contours := gocv.FindContoursWithParams(binary, &hierarchy, gocv.RetrievalCComp, gocv.ChainApproxNone)
	defer contours.Close()

	var outer [][]image.Point
	for i := 0; i < contours.Size(); i++ {
		if hierarchy.GetVeciAt(0, i)[hierarchyParent] >= 0 {
			continue
		}
		outer = append(outer, contours.At(i).ToPoints())
	}
	return outer
}

// outerRects returns the bounding rectangle of every outer contour of a binary image.
func outerRects(binary gocv.Mat) []geometry.Rect {
	contours := outerContours(binary)
	rects := make([]geometry.Rect, 0, len(contours))
	for _, points := range contours {
		r, err := geometry.BoundingRect(points)
		if err != nil {
			continue
		}
		rects = append(rects, r)
	}
	return rects
}

// simplifiedBounds approximates a closed contour with Douglas-Peucker at tolerance times its
// perimeter and returns the bounding rectangle of the simplified polygon.
func simplifiedBounds(points []image.Point, tolerance float64) (geometry.Rect, error) {
	curve := gocv.NewPointVectorFromPoints(points)
	defer curve.Close()

	epsilon := tolerance * gocv.ArcLength(curve, true)
	approx := gocv.ApproxPolyDP(curve, epsilon, true)
	defer approx.Close()

	return geometry.BoundingRect(approx.ToPoints())
}

// fillRects rasterises each non-degenerate rectangle as a solid block on a black canvas of
// the given size.
func fillRects(rects []geometry.Rect, width, height int) gocv.Mat {
	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC1)
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		gocv.Rectangle(&canvas, r.Image(), foreground, -1)
	}
	return canvas
}

// grayscaleMat converts any decoded image into a single channel 8-bit Mat with its origin at
// the image's top-left pixel.
func grayscaleMat(img image.Image) (gocv.Mat, error) {
	gray := imaging.Grayscale(img)
	b := gray.Bounds()

	// Every channel of the grayscale NRGBA holds the same level; keep one
	levels := make([]byte, 0, b.Dx()*b.Dy())
	for i := 0; i < len(gray.Pix); i += 4 {
		levels = append(levels, gray.Pix[i])
	}

	view, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8UC1, levels)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer view.Close()
	return view.Clone(), nil
}

// colorMat converts any decoded image into a BGR Mat with its origin at the image's top-left
// pixel.
func colorMat(img image.Image) (gocv.Mat, error) {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return gocv.ImageToMatRGB(rgba)
}
