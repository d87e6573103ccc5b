package esosearch

// TagSet is a set of markup element names.
type TagSet []string

// Tag sets used when scoring article pages.
var (
	// DescriptiveTags select the prose of an article.
	DescriptiveTags = TagSet{"p", "li"}

	// CodeTags select the code samples of an article.
	CodeTags = TagSet{"pre", "code"}
)

// TextExtractor pulls text blocks out of markup.
type TextExtractor interface {
	// ExtractText returns the text content of every element matching a tag
	// in tags, in document order. Nested markup is stripped. An element
	// matching several tags is returned once.
	ExtractText(markup string, tags TagSet) ([]string, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
