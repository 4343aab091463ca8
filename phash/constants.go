package phash

// Hashing constants
const (
	// Side of the square canvas the thumbnail is resized to before the transform
	HashImageSize = 32

	// Side of the low-frequency block kept from the transform
	ReducedSize = 8

	// Number of bits in a hash
	HashLength = ReducedSize * ReducedSize
)

// Fractions of the thumbnail removed before hashing. The portrait art sits in the upper
// middle; the bottom holds the name plate and rarity decoration.
const (
	CropTop    = 0.10
	CropBottom = 0.40
	CropLeft   = 0.25
	CropRight  = 0.10
)

// Rec. 709 luma weights
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)
