package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docshelf"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if docshelf.ErrorCode(err) == docshelf.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docshelf topics' to see available documents.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		}
		return err
	}

	switch {
	case c.HTML:
		html, err := deps.Renderer.Render(doc.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, html)
	case c.Outline:
		headings, err := deps.Renderer.Outline(doc.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
		for _, h := range headings {
			fmt.Fprintf(deps.Stdout, "%s%s (#%s)\n", strings.Repeat("  ", h.Level-1), h.Title, h.Anchor)
		}
	default:
		fmt.Fprintln(deps.Stdout, docshelf.FormatDocument(doc))
	}

	return nil
}
