package batch

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thumbnail-matcher/phash"
)

func writeThumbnail(t *testing.T, dir, name string, level uint8) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := level
			if (x/8+y/8)%2 == 0 {
				v = 255 - level
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestHashFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 6; i++ {
		paths = append(paths, writeThumbnail(t, dir, fmt.Sprintf("card-%d.png", i), uint8(20+i*10)))
	}

	results, err := HashFiles(context.Background(), paths, 3)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		assert.NoError(t, res.Err)

		img, err := imaging.Open(paths[i])
		require.NoError(t, err)
		want, err := phash.Compute(img)
		require.NoError(t, err)
		assert.Equal(t, want, res.Hash)
	}
	assert.Equal(t, "card-0.png", results[0].Name())
}

func TestHashFilesReportsBadFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeThumbnail(t, dir, "good.png", 60)
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	missing := filepath.Join(dir, "missing.png")

	results, err := HashFiles(context.Background(), []string{bad, good, missing}, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Error(t, results[2].Err)
}

func TestHashFilesCancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeThumbnail(t, dir, "card.png", 80)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HashFiles(ctx, []string{path, path}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHashFilesEmpty(t *testing.T) {
	results, err := HashFiles(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}
