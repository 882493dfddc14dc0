package handlers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut runs every op concurrently and waits for all of them. It returns the
// first error reported, or nil.
//
// A failing op does not cancel its siblings and completed ops are not undone:
// callers get partial application on failure.
func fanOut(ctx context.Context, ops ...func(ctx context.Context) error) error {
	var g errgroup.Group
	for _, op := range ops {
		g.Go(func() error {
			return op(ctx)
		})
	}
	return g.Wait()
}
