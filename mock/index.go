package mock

import (
	"context"

	"github.com/fwojciec/esosearch"
)

var _ esosearch.IndexSource = (*IndexSource)(nil)

// IndexSource is a mock implementation of esosearch.IndexSource.
type IndexSource struct {
	FetchIndexFn func(ctx context.Context) ([]esosearch.Entry, error)
}

func (s *IndexSource) FetchIndex(ctx context.Context) ([]esosearch.Entry, error) {
	return s.FetchIndexFn(ctx)
}

var _ esosearch.IndexParser = (*IndexParser)(nil)

// IndexParser is a mock implementation of esosearch.IndexParser.
type IndexParser struct {
	ParseIndexFn func(html string, baseURL string) ([]esosearch.Entry, error)
}

func (p *IndexParser) ParseIndex(html string, baseURL string) ([]esosearch.Entry, error) {
	return p.ParseIndexFn(html, baseURL)
}
