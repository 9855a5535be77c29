package fetchcache

import (
	"context"
	"fmt"
	"sync"
)

// Query is one unit of work for BatchQueries.
type Query func(ctx context.Context) (any, error)

// BatchQueries runs every query concurrently and waits for all of them.
// Results come back in input order. If any query failed, the error of the
// lowest-indexed failure is returned and the other outcomes are dropped.
func BatchQueries(ctx context.Context, queries ...Query) ([]any, error) {
	fns := make([]func(context.Context) (any, error), len(queries))
	for i, q := range queries {
		fns[i] = q
	}
	return Batch(ctx, fns...)
}

// Batch is the typed form of BatchQueries. A panicking query fails with an
// error instead of taking the process down.
func Batch[T any](ctx context.Context, queries ...func(ctx context.Context) (T, error)) ([]T, error) {
	results := make([]T, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	wg.Add(len(queries))
	for i, q := range queries {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("query %d panicked: %v", i, r)
				}
			}()
			results[i], errs[i] = q(ctx)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
