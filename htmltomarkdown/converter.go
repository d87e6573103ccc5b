// Package htmltomarkdown renders extracted article HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/esosearch"
)

// Ensure Converter implements esosearch.Converter at compile time.
var _ esosearch.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter

	// Domain turns relative links such as "/wiki/Befunge" into absolute
	// ones. Relative links are kept as-is when empty.
	Domain string
}

// NewConverter creates a Converter resolving links against domain,
// e.g. esosearch.DefaultBaseURL.
func NewConverter(domain string) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv, Domain: domain}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", esosearch.Errorf(esosearch.EINVALID, "empty HTML input")
	}

	var result string
	var err error
	if c.Domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(c.Domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}

	return result, nil
}
