package mock

import "github.com/fwojciec/docshelf"

var _ docshelf.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docshelf.Renderer.
type Renderer struct {
	RenderFn  func(markdown string) (string, error)
	OutlineFn func(markdown string) ([]docshelf.Heading, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

func (r *Renderer) Outline(markdown string) ([]docshelf.Heading, error) {
	return r.OutlineFn(markdown)
}
