package polyroot

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FindAll solves each polynomial independently, at most workers at a time
// (unbounded when workers <= 0). Results line up with polys. The first
// error cancels the remaining work and is returned.
func (f *Finder) FindAll(ctx context.Context, polys []*Polynomial, workers int) ([][]float64, error) {
	results := make([][]float64, len(polys))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range polys {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			roots, err := f.Find(p)
			if err != nil {
				return fmt.Errorf("polynomial %d: %w", i, err)
			}
			results[i] = roots
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.logger.Debug("batch solved", zap.Int("count", len(polys)), zap.Int("workers", workers))
	return results, nil
}
