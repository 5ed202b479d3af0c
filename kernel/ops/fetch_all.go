package ops

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll primes every collection in parallel, the console's initial-load
// path. Individual failures stay absorbed per collection; FetchAll itself
// never fails, it just leaves the failed collections in the Error state.
func (c *Console) FetchAll(ctx context.Context) {
	group, ctx := errgroup.WithContext(ctx)

	fetches := []func(context.Context){
		c.FetchLabels,
		c.FetchBuckets,
		c.FetchChecks,
		c.FetchDashboards,
		c.FetchVariables,
		c.FetchAuthorizations,
		c.FetchMembers,
		c.FetchTemplates,
		c.FetchScrapers,
	}
	for _, fetch := range fetches {
		fetch := fetch
		group.Go(func() error {
			fetch(ctx)
			return nil
		})
	}
	_ = group.Wait()
}
