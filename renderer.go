package docshelf

// Renderer converts markdown into HTML with highlighted code blocks.
type Renderer interface {
	Render(markdown string) (html string, err error)

	// Outline returns the headings of markdown in document order. Anchors
	// match the heading ids in Render's output.
	Outline(markdown string) ([]Heading, error)
}
