package extractor

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	gridColor      = color.RGBA{B: 255, A: 255}
	thumbnailColor = color.RGBA{G: 255, A: 255}
)

// DrawOverlay returns a copy of the screenshot with the detected grid outlined in blue and each
// kept thumbnail outlined in green, for inspecting detection results.
func DrawOverlay(img image.Image, layout Layout) (image.Image, error) {
	debugImg, err := colorMat(img)
	if err != nil {
		return nil, fmt.Errorf("convert screenshot: %w", err)
	}
	defer debugImg.Close()

	if layout.Found {
		gocv.Rectangle(&debugImg, layout.Grid.Image(), gridColor, 2)
	}
	for _, r := range layout.Absolute() {
		gocv.Rectangle(&debugImg, r.Image(), thumbnailColor, 2)
	}

	return debugImg.ToImage()
}
