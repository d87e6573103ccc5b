package esosearch

import "context"

// FetchProgress reports progress during page fetching.
type FetchProgress struct {
	Address   string
	Completed int
	Total     int
	Error     error
}

// FetchProgressFunc is called as pages are processed.
type FetchProgressFunc func(FetchProgress)

// FetchFailure records a page that could not be fetched.
type FetchFailure struct {
	Entry Entry
	Err   error
}

// FetchResult summarizes a batch of page fetches.
type FetchResult struct {
	Fetched int
	Cached  int
	Failed  []FetchFailure
}

// FailedAddresses returns the set of addresses whose fetch failed.
func (r *FetchResult) FailedAddresses() map[string]bool {
	failed := make(map[string]bool, len(r.Failed))
	for _, f := range r.Failed {
		failed[f.Entry.Address] = true
	}
	return failed
}

// PageFetcher fills the cache with article pages.
// Implementations hide key derivation, deduplication and concurrency.
type PageFetcher interface {
	// FetchAll fetches every uncached entry. A failed entry is reported in
	// the result and never aborts the batch. The error is non-nil only if
	// the context is canceled.
	FetchAll(ctx context.Context, entries []Entry, progress FetchProgressFunc) (*FetchResult, error)

	// FetchOne fetches a single entry unless it is already cached.
	FetchOne(ctx context.Context, entry Entry) error
}
