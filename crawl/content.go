package crawl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/esosearch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Ensure ContentFetcher implements esosearch.PageFetcher at compile time.
var _ esosearch.PageFetcher = (*ContentFetcher)(nil)

// ContentFetcher downloads article pages into the cache.
//
// Each key is attempted at most once per ContentFetcher: a page already in
// the cache is never requested, concurrent requests for one key share a
// single download, and a failed download is remembered and reported again
// rather than retried. Use a new ContentFetcher for each run.
type ContentFetcher struct {
	Cache   esosearch.CacheStore
	Fetcher esosearch.Fetcher
	Codec   esosearch.KeyCodec
	Logger  *slog.Logger

	// Concurrency bounds parallel downloads in FetchAll. Values below 1
	// mean sequential fetching.
	Concurrency int

	group     singleflight.Group
	mu        sync.Mutex
	attempted map[string]error
}

// FetchOne fetches entry unless its page is already cached.
func (f *ContentFetcher) FetchOne(ctx context.Context, entry esosearch.Entry) error {
	_, err := f.fetch(ctx, entry)
	return err
}

// FetchAll fetches every uncached entry with bounded concurrency.
// Failures are logged and collected in the result; they never stop the
// batch. The returned error is the context error if ctx ends early.
func (f *ContentFetcher) FetchAll(ctx context.Context, entries []esosearch.Entry, progress esosearch.FetchProgressFunc) (*esosearch.FetchResult, error) {
	logger := loggerOrDiscard(f.Logger)

	concurrency := f.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	type outcome struct {
		done    bool
		fetched bool
		err     error
	}
	outcomes := make([]outcome, len(entries))

	var (
		progressMu sync.Mutex
		completed  int
	)

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fetched, err := f.fetch(ctx, entry)
			outcomes[i] = outcome{done: true, fetched: fetched, err: err}

			if err != nil && ctx.Err() == nil {
				logger.Error("error downloading article", "url", entry.Address, "err", err)
			}

			progressMu.Lock()
			completed++
			if progress != nil {
				progress(esosearch.FetchProgress{
					Address:   entry.Address,
					Completed: completed,
					Total:     len(entries),
					Error:     err,
				})
			}
			progressMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	result := &esosearch.FetchResult{}
	for i, o := range outcomes {
		switch {
		case !o.done:
		case o.err != nil:
			result.Failed = append(result.Failed, esosearch.FetchFailure{Entry: entries[i], Err: o.err})
		case o.fetched:
			result.Fetched++
		default:
			result.Cached++
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	logger.Info("pages ready",
		"fetched", result.Fetched,
		"cached", result.Cached,
		"failed", len(result.Failed),
	)
	return result, nil
}

// fetch downloads and caches one page. It reports false when the page was
// already cached.
func (f *ContentFetcher) fetch(ctx context.Context, entry esosearch.Entry) (bool, error) {
	key, err := f.Codec.Encode(entry.Address)
	if err != nil {
		return false, err
	}
	if seen, err := f.previous(key); seen {
		return false, err
	}

	// Callers that join an in-flight download report it as cached.
	var leader bool
	v, err, _ := f.group.Do(key, func() (any, error) {
		leader = true
		if seen, err := f.previous(key); seen {
			return false, err
		}

		logger := loggerOrDiscard(f.Logger)
		exists, err := f.Cache.Exists(ctx, key)
		if err != nil {
			return false, err
		}
		if exists {
			logger.Debug("page cached", "url", entry.Address, "key", key)
			f.remember(key, nil)
			return false, nil
		}

		logger.Debug("downloading page", "url", entry.Address, "key", key)
		body, err := f.Fetcher.Fetch(ctx, entry.Address)
		if err == nil {
			err = f.Cache.Write(ctx, key, []byte(body))
		}
		// A canceled run has not really attempted the page.
		if ctx.Err() == nil {
			f.remember(key, err)
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return leader && v.(bool), nil
}

// previous reports the outcome of an earlier attempt at key, if any.
func (f *ContentFetcher) previous(key string) (seen bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	err, seen = f.attempted[key]
	return seen, err
}

func (f *ContentFetcher) remember(key string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attempted == nil {
		f.attempted = make(map[string]error)
	}
	f.attempted[key] = err
}
