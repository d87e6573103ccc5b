// Package crawl discovers articles from the wiki index and fills the page
// cache. Both stages consult the cache first, so a warm cache makes a run
// fully offline.
package crawl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/esosearch"
)

// Ensure IndexFetcher implements esosearch.IndexSource at compile time.
var _ esosearch.IndexSource = (*IndexFetcher)(nil)

// IndexFetcher loads the index page, from cache when present, and parses
// it into entries.
type IndexFetcher struct {
	Cache   esosearch.CacheStore
	Fetcher esosearch.Fetcher
	Parser  esosearch.IndexParser
	Logger  *slog.Logger

	// BaseURL is prepended to the index path and to every article href.
	// Defaults to esosearch.DefaultBaseURL.
	BaseURL string

	// IndexPath defaults to esosearch.DefaultIndexPath.
	IndexPath string
}

// IndexURL returns the URL of the index page.
func (f *IndexFetcher) IndexURL() string {
	return f.baseURL() + f.indexPath()
}

func (f *IndexFetcher) baseURL() string {
	if f.BaseURL == "" {
		return esosearch.DefaultBaseURL
	}
	return strings.TrimSuffix(f.BaseURL, "/")
}

func (f *IndexFetcher) indexPath() string {
	if f.IndexPath == "" {
		return esosearch.DefaultIndexPath
	}
	return f.IndexPath
}

// FetchIndex returns the entries listed on the index page.
// A freshly downloaded page is cached under esosearch.IndexKey.
func (f *IndexFetcher) FetchIndex(ctx context.Context) ([]esosearch.Entry, error) {
	logger := loggerOrDiscard(f.Logger)

	content, err := f.load(ctx, logger)
	if err != nil {
		logger.Error("could not download language list", "url", f.IndexURL(), "err", err)
		return nil, err
	}

	entries, err := f.Parser.ParseIndex(content, f.baseURL())
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Error("language list has no entries", "url", f.IndexURL())
		return nil, esosearch.Errorf(esosearch.ENOENTRIES, "no languages found on %s", f.IndexURL())
	}

	logger.Info("languages to search", "count", len(entries))
	return entries, nil
}

func (f *IndexFetcher) load(ctx context.Context, logger *slog.Logger) (string, error) {
	cached, err := f.Cache.Exists(ctx, esosearch.IndexKey)
	if err != nil {
		return "", err
	}
	if cached {
		logger.Debug("using cached index page", "key", esosearch.IndexKey)
		data, err := f.Cache.Read(ctx, esosearch.IndexKey)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	body, err := f.Fetcher.Fetch(ctx, f.IndexURL())
	if err != nil {
		return "", err
	}
	if err := f.Cache.Write(ctx, esosearch.IndexKey, []byte(body)); err != nil {
		return "", err
	}
	logger.Info("language list downloaded", "url", f.IndexURL(), "bytes", len(body))
	return body, nil
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
