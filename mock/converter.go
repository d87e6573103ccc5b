package mock

import "github.com/fwojciec/esosearch"

var _ esosearch.Converter = (*Converter)(nil)

// Converter is a mock implementation of esosearch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
