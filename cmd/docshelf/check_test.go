package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docshelf"
	main "github.com/fwojciec/docshelf/cmd/docshelf"
	"github.com/fwojciec/docshelf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	registry := docshelf.Registry{
		{Slug: "introduction", Title: "Introduction", Topic: "Getting Started", File: "introduction.md"},
		{Slug: "api", Title: "API", Topic: "Reference", File: "api.md"},
	}
	resolver := &mock.Resolver{
		ResolveAllFn: func(_ context.Context) []*docshelf.Resolution {
			return []*docshelf.Resolution{
				{Entry: registry[0], Content: "# Introduction", Hash: "abc123"},
				{Entry: registry[1], Fallback: true, Reason: errors.New("HTTP 404 for api.md"), Hash: "def456"},
			}
		},
	}

	t.Run("reports resolved and fallback entries", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Registry: registry,
			Resolver: resolver,
		}

		err := (&main.CheckCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Regexp(t, `OK\s+introduction\s+abc123`, output)
		assert.Regexp(t, `FALLBACK\s+api\s+def456\s+HTTP 404 for api.md`, output)
		assert.Contains(t, output, "2 entries, 1 resolved, 1 using placeholder content")
	})

	t.Run("strict mode fails on fallback", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Registry: registry,
			Resolver: resolver,
		}

		err := (&main.CheckCmd{Strict: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, docshelf.ENOTFOUND, docshelf.ErrorCode(err))
		assert.Contains(t, docshelf.ErrorMessage(err), "1 registry files unavailable")
	})

	t.Run("fails on invalid registry without resolving", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Registry: docshelf.Registry{
				{Slug: "a", Title: "A", File: "a.md"},
				{Slug: "a", Title: "B", File: "b.md"},
			},
		}

		err := (&main.CheckCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))
		assert.Contains(t, stderr.String(), "duplicate slug a")
	})
}
