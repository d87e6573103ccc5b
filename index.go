package esosearch

import "context"

// Default locations of the esolangs.org wiki.
const (
	DefaultBaseURL   = "https://esolangs.org"
	DefaultIndexPath = "/wiki/Language_list"
	ArticlePath      = "/wiki/"
)

// IndexSource lists the articles named on the index page.
type IndexSource interface {
	// FetchIndex returns the entries of the index page in document order.
	// Returns EFETCH if the page cannot be downloaded and ENOENTRIES if it
	// lists no articles.
	FetchIndex(ctx context.Context) ([]Entry, error)
}

// IndexParser turns index page markup into entries.
type IndexParser interface {
	// ParseIndex returns one entry per article link in the article list.
	// Addresses are formed by appending each link's href to baseURL.
	ParseIndex(html string, baseURL string) ([]Entry, error)
}
