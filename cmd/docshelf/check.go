package main

import (
	"fmt"

	"github.com/fwojciec/docshelf"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if err := deps.Registry.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docshelf.ErrorMessage(err))
		return err
	}

	results := deps.Resolver.ResolveAll(deps.Ctx)

	fallbacks := 0
	for _, res := range results {
		if res.Fallback {
			fallbacks++
			fmt.Fprintf(deps.Stdout, "FALLBACK  %-24s %s  %v\n", res.Entry.Slug, res.Hash, res.Reason)
			continue
		}
		fmt.Fprintf(deps.Stdout, "OK        %-24s %s\n", res.Entry.Slug, res.Hash)
	}

	fmt.Fprintf(deps.Stdout, "\n%d entries, %d resolved, %d using placeholder content\n",
		len(results), len(results)-fallbacks, fallbacks)

	if c.Strict && fallbacks > 0 {
		return docshelf.Errorf(docshelf.ENOTFOUND, "%d registry files unavailable", fallbacks)
	}
	return nil
}
