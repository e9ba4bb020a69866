package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the topic-names command.
func (c *TopicNamesCmd) Run(deps *Dependencies) error {
	names, err := deps.Documents.ListTopicNames(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
