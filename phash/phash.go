// Package phash generates 64-bit perceptual hashes of card thumbnails.
//
// The algorithm follows the DCT based pHash described by HackerFactor ("Looks Like It"),
// preceded by a fixed crop that removes the card frame decoration. Visually similar thumbnails
// produce hashes a small Hamming distance apart; comparing hashes is left to the caller.
package phash

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"thumbnail-matcher/geometry"
)

// ErrInvalidDimensions is returned for thumbnails with zero width or height.
var ErrInvalidDimensions = geometry.ErrInvalidDimensions

// Hash is a 64-bit perceptual fingerprint. Bit 63 holds the lowest-frequency coefficient.
type Hash uint64

// String formats the hash as 0x followed by 16 hex digits.
func (h Hash) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// Decimal formats the hash in base 10, the form stored in hash files.
func (h Hash) Decimal() string {
	return strconv.FormatUint(uint64(h), 10)
}

// ImageHash converts h for consumers that compare hashes with goimagehash.
func (h Hash) ImageHash() *goimagehash.ImageHash {
	return goimagehash.NewImageHash(uint64(h), goimagehash.PHash)
}

// ParseHash accepts the Decimal form or the 0x-prefixed String form.
func ParseHash(s string) (Hash, error) {
	s = strings.TrimSpace(s)
	var (
		v   uint64
		err error
	)
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err = strconv.ParseUint(hex, 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("parse hash %q: %w", s, err)
	}
	return Hash(v), nil
}

// Compute generates the perceptual hash of a thumbnail.
func Compute(img image.Image) (Hash, error) {
	block, err := lowFrequencies(img)
	if err != nil {
		return 0, err
	}
	return fromCoefficients(block), nil
}

// lowFrequencies returns the top-left ReducedSize x ReducedSize block of the thumbnail's
// DCT-II, row-major, with the DC term zeroed.
func lowFrequencies(img image.Image) ([HashLength]float64, error) {
	var block [HashLength]float64

	if err := geometry.CheckDimensions(img.Bounds()); err != nil {
		return block, err
	}

	cropped := cropForHash(img)
	resized := resize.Resize(HashImageSize, HashImageSize, cropped, resize.Bilinear)
	coeffs := DCT2D(luminance(resized), HashImageSize)

	// The DC term only carries overall brightness and would dominate the mean
	coeffs[0] = 0

	for x := 0; x < ReducedSize; x++ {
		copy(block[x*ReducedSize:(x+1)*ReducedSize], coeffs[x*HashImageSize:x*HashImageSize+ReducedSize])
	}
	return block, nil
}

// fromCoefficients sets bit 63-(x*8+y) for each coefficient (x, y) above the block mean.
func fromCoefficients(block [HashLength]float64) Hash {
	var mean float64
	for _, v := range block {
		mean += v
	}
	mean /= HashLength

	var h Hash
	for x := 0; x < ReducedSize; x++ {
		for y := 0; y < ReducedSize; y++ {
			if block[x*ReducedSize+y] > mean {
				h |= 1 << (HashLength - 1 - (x*ReducedSize + y))
			}
		}
	}
	return h
}

// cropForHash removes the frame decoration around the portrait art.
func cropForHash(img image.Image) image.Image {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	top := int(math.Floor(h * CropTop))
	bottom := int(math.Floor(h * CropBottom))
	left := int(math.Floor(w * CropLeft))
	right := int(math.Floor(w * CropRight))

	return imaging.Crop(img, image.Rect(b.Min.X+left, b.Min.Y+top, b.Max.X-right, b.Max.Y-bottom))
}

// luminance returns the row-major Rec. 709 luma of img in [0, 1].
func luminance(img image.Image) []float64 {
	b := img.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out = append(out, (lumaR*float64(r)+lumaG*float64(g)+lumaB*float64(bl))/0xffff)
		}
	}
	return out
}
