// Package fanout runs groups of independent operations concurrently and
// waits for every member before returning.
//
// The first error observed wins. Members are never cancelled because a
// sibling failed: each runs to completion or failure on its own and later
// errors are dropped.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All runs fn for every index in [0, n) and returns the results in index
// order, regardless of completion order.
func All[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	// A plain Group, not WithContext: a failure must not cancel siblings.
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Each is All for operations without a result.
func Each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	_, err := All(ctx, n, func(ctx context.Context, i int) (struct{}, error) {
		return struct{}{}, fn(ctx, i)
	})
	return err
}
