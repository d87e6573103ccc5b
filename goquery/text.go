package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/esosearch"
)

// Ensure TextExtractor implements esosearch.TextExtractor at compile time.
var _ esosearch.TextExtractor = (*TextExtractor)(nil)

// TextExtractor returns the text of selected elements using goquery.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the text of every element named in tags, in
// document order. Text is the concatenation of all descendant text nodes,
// untrimmed.
func (e *TextExtractor) ExtractText(markup string, tags esosearch.TagSet) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	for _, tag := range tags {
		if !isTagName(tag) {
			return nil, esosearch.Errorf(esosearch.EINVALID, "invalid tag name %q", tag)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, esosearch.Errorf(esosearch.EINVALID, "failed to parse HTML: %v", err)
	}

	// A selector group matches each node at most once, in document order.
	sel := doc.Find(strings.Join(tags, ", "))
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})

	return texts, nil
}

func isTagName(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
