package mock

import "github.com/aeojs/aeo"

var _ aeo.Converter = (*Converter)(nil)

// Converter is a mock implementation of aeo.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
