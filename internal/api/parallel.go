package api

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// awaitAll runs checks concurrently and waits for all of them. It returns
// the error of the earliest check, in argument order, that failed.
func awaitAll(ctx context.Context, checks ...func(context.Context) error) error {
	errs := make([]error, len(checks))

	var g errgroup.Group
	for i, check := range checks {
		i, check := i, check
		g.Go(func() error {
			errs[i] = check(ctx)
			return errs[i]
		})
	}
	// Wait reports whichever failure finished first, so the slots decide
	// which one is returned
	if g.Wait() == nil {
		return nil
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
