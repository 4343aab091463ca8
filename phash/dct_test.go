package phash

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveDCT2D evaluates the DCT-II definition directly.
func naiveDCT2D(src []float64, n int) []float64 {
	dst := make([]float64, n*n)
	piOverN := math.Pi / float64(n)
	for k1 := 0; k1 < n; k1++ {
		for k2 := 0; k2 < n; k2++ {
			var sum float64
			for n1 := 0; n1 < n; n1++ {
				for n2 := 0; n2 < n; n2++ {
					sum += src[n1*n+n2] *
						math.Cos(piOverN*(float64(n1)+0.5)*float64(k1)) *
						math.Cos(piOverN*(float64(n2)+0.5)*float64(k2))
				}
			}
			dst[k1*n+k2] = sum
		}
	}
	return dst
}

func TestDCT2DMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, n := range []int{1, 4, 8, HashImageSize} {
		src := make([]float64, n*n)
		for i := range src {
			src[i] = rng.Float64()
		}

		got := DCT2D(src, n)
		want := naiveDCT2D(src, n)
		require.Len(t, got, n*n)
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-9, "n=%d index=%d", n, i)
		}
	}
}

func TestDCT2DConstantInput(t *testing.T) {
	const n = 8
	src := make([]float64, n*n)
	for i := range src {
		src[i] = 0.5
	}

	got := DCT2D(src, n)
	assert.InDelta(t, 0.5*n*n, got[0], 1e-12)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 0, got[i], 1e-12, "index %d", i)
	}
}

func TestDCT2DPanicsOnShapeMismatch(t *testing.T) {
	assert.Panics(t, func() { DCT2D(make([]float64, 10), 4) })
}
