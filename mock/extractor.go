package mock

import "github.com/fwojciec/esosearch"

var _ esosearch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of esosearch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*esosearch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*esosearch.ExtractResult, error) {
	return e.ExtractFn(html)
}
