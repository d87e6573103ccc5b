package mock

import "github.com/fwojciec/esosearch"

var _ esosearch.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of esosearch.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(markup string, tags esosearch.TagSet) ([]string, error)
}

func (e *TextExtractor) ExtractText(markup string, tags esosearch.TagSet) ([]string, error) {
	return e.ExtractTextFn(markup, tags)
}
