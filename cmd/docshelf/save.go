package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docshelf"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	content, err := c.content()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	slug := c.Slug
	if slug == "" {
		slug = docshelf.Slugify(c.Title)
		if slug == "" && c.Title != "" {
			err := docshelf.Errorf(docshelf.EINVALID, "cannot derive a slug from title %q; pass one with --slug", c.Title)
			fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
			return err
		}
	}

	doc := &docshelf.Document{
		Slug:     slug,
		Title:    c.Title,
		Content:  content,
		Topic:    c.Topic,
		Subtopic: c.Subtopic,
	}
	if err := deps.Documents.SaveDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q as %s\n", doc.Title, doc.Slug)
	return nil
}

func (c *SaveCmd) content() (string, error) {
	switch {
	case c.Template:
		return docshelf.NewDocumentTemplate, nil
	case c.File != "":
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", docshelf.Errorf(docshelf.EINVALID, "cannot read %s: %v", c.File, err)
		}
		return string(data), nil
	case c.Content != "":
		return c.Content, nil
	default:
		return "", docshelf.Errorf(docshelf.EINVALID, "one of --content, --file or --template is required")
	}
}
