package mock

import (
	"context"

	"github.com/fwojciec/esosearch"
)

var _ esosearch.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of esosearch.PageFetcher.
type PageFetcher struct {
	FetchAllFn func(ctx context.Context, entries []esosearch.Entry, progress esosearch.FetchProgressFunc) (*esosearch.FetchResult, error)
	FetchOneFn func(ctx context.Context, entry esosearch.Entry) error
}

func (f *PageFetcher) FetchAll(ctx context.Context, entries []esosearch.Entry, progress esosearch.FetchProgressFunc) (*esosearch.FetchResult, error) {
	return f.FetchAllFn(ctx, entries, progress)
}

func (f *PageFetcher) FetchOne(ctx context.Context, entry esosearch.Entry) error {
	return f.FetchOneFn(ctx, entry)
}
