// Package trafilatura extracts the readable body of an article page.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/esosearch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// DefaultTitleSuffix is the site name MediaWiki appends to esolangs.org
// page titles.
const DefaultTitleSuffix = " - Esolang"

// Ensure Extractor implements esosearch.Extractor at compile time.
var _ esosearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the article body out of a wiki
// page, dropping navigation, sidebars and footers.
type Extractor struct {
	// TitleSuffix is trimmed from the extracted page title.
	TitleSuffix string
}

// NewExtractor creates a new Extractor for esolangs.org pages.
func NewExtractor() *Extractor {
	return &Extractor{TitleSuffix: DefaultTitleSuffix}
}

// Extract processes raw HTML and returns the article body.
// Returns EINVALID for blank input.
func (e *Extractor) Extract(rawHTML string) (*esosearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, esosearch.Errorf(esosearch.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if e.TitleSuffix != "" {
		title = strings.TrimSuffix(title, e.TitleSuffix)
	}

	return &esosearch.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
