// Package batch hashes many thumbnail files in parallel.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"thumbnail-matcher/phash"
)

// Result is the outcome for one file. Err is set when the file could not be decoded or hashed.
type Result struct {
	Path string
	Hash phash.Hash
	Err  error
}

// Name returns the base name of the file, the key used in hash files.
func (r Result) Name() string {
	return filepath.Base(r.Path)
}

// HashFiles decodes and hashes every path with at most workers files in flight. Results keep
// the order of paths. A file that fails only marks its own Result; the returned error is
// non-nil only when ctx is cancelled.
func HashFiles(ctx context.Context, paths []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = hashFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	// Wait cancels gctx, so check the caller's context
	return results, ctx.Err()
}

func hashFile(path string) Result {
	res := Result{Path: path}

	img, err := imaging.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("decode %s: %w", path, err)
		slog.Debug("hash failed", "path", path, "error", err)
		return res
	}

	h, err := phash.Compute(img)
	if err != nil {
		res.Err = fmt.Errorf("hash %s: %w", path, err)
		slog.Debug("hash failed", "path", path, "error", err)
		return res
	}

	res.Hash = h
	slog.Debug("hashed", "path", path, "hash", h.String())
	return res
}
