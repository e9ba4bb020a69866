package docshelf

// Heading is one entry of a document's outline. Anchor is the id the
// Renderer assigns to the heading in its HTML output.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}
