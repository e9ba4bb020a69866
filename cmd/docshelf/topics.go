package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	topics, err := deps.Documents.ListTopics(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'docshelf save' to add one.")
		return nil
	}

	fmt.Fprint(deps.Stdout, docshelf.FormatTopics(topics))
	return nil
}
