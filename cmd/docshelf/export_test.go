package main_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docshelf"
	main "github.com/fwojciec/docshelf/cmd/docshelf"
	"github.com/fwojciec/docshelf/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	documents := &mock.DocumentService{
		ListTopicsFn: func(_ context.Context) ([]*docshelf.Topic, error) {
			return docshelf.BuildTopics([]*docshelf.Document{
				{Slug: "a", Title: "A", Topic: "T", Content: "a"},
				{Slug: "b", Title: "B", Topic: "U", Subtopic: "S", Content: "b"},
			}), nil
		},
	}

	t.Run("saves every document then commits", func(t *testing.T) {
		t.Parallel()

		var saved []string
		var gotBase, gotName string
		committed := false
		exporter := &mock.DocumentExporter{
			SaveFn: func(_ context.Context, doc *docshelf.Document) error {
				saved = append(saved, doc.Slug)
				return nil
			},
			CommitFn: func() error {
				committed = true
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
			NewExporter: func(baseDir, name string) docshelf.DocumentExporter {
				gotBase, gotName = baseDir, name
				return exporter
			},
		}

		err := (&main.ExportCmd{Dir: "/out", Name: "docs"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, saved)
		assert.True(t, committed)
		assert.Equal(t, "/out", gotBase)
		assert.Equal(t, "docs", gotName)
		assert.Contains(t, stdout.String(), "Exported 2 documents to "+filepath.Join("/out", "docs"))
	})

	t.Run("aborts when a save fails", func(t *testing.T) {
		t.Parallel()

		aborted := false
		exporter := &mock.DocumentExporter{
			SaveFn: func(_ context.Context, doc *docshelf.Document) error {
				return errors.New("disk full")
			},
			CommitFn: func() error {
				t.Fatal("commit should not be called")
				return nil
			},
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Documents: documents,
			NewExporter: func(string, string) docshelf.DocumentExporter {
				return exporter
			},
		}

		err := (&main.ExportCmd{Dir: "/out", Name: "docs"}).Run(deps)

		require.Error(t, err)
		assert.True(t, aborted)
		assert.Contains(t, stderr.String(), "failed to export a")
	})
}
