package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/esosearch"
	"golang.org/x/net/html"
)

// DefaultIndexContainer selects the MediaWiki article body. Navigation,
// table of contents and category links live outside of it or use
// fragment hrefs.
const DefaultIndexContainer = "#mw-content-text"

// articleLinkSelector matches list items that open with an article link.
const articleLinkSelector = `li > a:first-child[href^="` + esosearch.ArticlePath + `"]`

// Ensure IndexParser implements esosearch.IndexParser at compile time.
var _ esosearch.IndexParser = (*IndexParser)(nil)

// IndexParser extracts article entries from a wiki index page.
type IndexParser struct {
	// Container scopes the search to the article list. Empty means the
	// whole document.
	Container string
}

// NewIndexParser creates an IndexParser scoped to DefaultIndexContainer.
func NewIndexParser() *IndexParser {
	return &IndexParser{Container: DefaultIndexContainer}
}

// ParseIndex returns one entry for every list item inside the container
// whose content starts with a link to an article. The entry title is the
// link's title attribute, falling back to its text. Entries are unique by
// address; the first occurrence wins.
func (p *IndexParser) ParseIndex(rawHTML string, baseURL string) ([]esosearch.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, esosearch.Errorf(esosearch.EINVALID, "failed to parse HTML: %v", err)
	}

	scope := doc.Selection
	if p.Container != "" {
		scope = doc.Find(p.Container)
	}

	base := strings.TrimSuffix(baseURL, "/")
	seen := make(map[string]bool)
	var entries []esosearch.Entry

	scope.Find(articleLinkSelector).Each(func(_ int, a *goquery.Selection) {
		if hasLeadingText(a.Nodes[0]) {
			return
		}

		href, _ := a.Attr("href")
		title, ok := a.Attr("title")
		if !ok || strings.TrimSpace(title) == "" {
			title = strings.TrimSpace(a.Text())
		}
		if title == "" {
			return
		}

		address := base + href
		if seen[address] {
			return
		}
		seen[address] = true
		entries = append(entries, esosearch.Entry{Title: title, Address: address})
	})

	return entries, nil
}

// hasLeadingText reports whether non-blank text precedes n in its parent,
// as in "<li>see <a ...>", which is a reference rather than an entry.
func hasLeadingText(n *html.Node) bool {
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type == html.TextNode && strings.TrimSpace(sib.Data) != "" {
			return true
		}
	}
	return false
}
