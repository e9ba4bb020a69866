package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docshelf"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	topics, err := deps.Documents.ListTopics(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	exporter := deps.NewExporter(c.Dir, c.Name)

	count := 0
	for _, topic := range topics {
		for _, sub := range topic.Subtopics {
			for _, doc := range sub.Docs {
				if err := exporter.Save(deps.Ctx, doc); err != nil {
					_ = exporter.Abort()
					fmt.Fprintf(deps.Stderr, "error: failed to export %s: %s\n", doc.Slug, docshelf.ErrorMessage(err))
					return err
				}
				count++
			}
		}
	}

	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", count, filepath.Join(c.Dir, c.Name))
	return nil
}
