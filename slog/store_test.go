package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/mock"
	docslog "github.com/fwojciec/docshelf/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCustomStore_List(t *testing.T) {
	t.Parallel()

	t.Run("logs document count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CustomStore{
			ListFn: func(ctx context.Context) ([]*docshelf.Document, error) {
				return []*docshelf.Document{{Slug: "a"}, {Slug: "b"}}, nil
			},
		}

		store := docslog.NewLoggingCustomStore(inner, logger)
		docs, err := store.List(context.Background())

		require.NoError(t, err)
		assert.Len(t, docs, 2)
		output := buf.String()
		assert.Contains(t, output, "custom store list")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CustomStore{
			ListFn: func(ctx context.Context) ([]*docshelf.Document, error) {
				return nil, errors.New("disk full")
			},
		}

		store := docslog.NewLoggingCustomStore(inner, logger)
		_, err := store.List(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})

	t.Run("warns on corrupt store", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CustomStore{
			ListFn: func(ctx context.Context) ([]*docshelf.Document, error) {
				return nil, docshelf.Errorf(docshelf.ECORRUPT, "custom documents are unreadable")
			},
		}

		store := docslog.NewLoggingCustomStore(inner, logger)
		_, err := store.List(context.Background())

		assert.Equal(t, docshelf.ECORRUPT, docshelf.ErrorCode(err))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "custom store corrupt")
		assert.Contains(t, buf.String(), "unreadable")
	})
}

func TestLoggingCustomStore_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("logs slug and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var got *docshelf.Document
		inner := &mock.CustomStore{
			UpsertFn: func(ctx context.Context, doc *docshelf.Document) error {
				got = doc
				return nil
			},
		}

		doc := &docshelf.Document{Slug: "deploy"}
		store := docslog.NewLoggingCustomStore(inner, logger)
		err := store.Upsert(context.Background(), doc)

		require.NoError(t, err)
		assert.Same(t, doc, got)
		output := buf.String()
		assert.Contains(t, output, "custom store upsert")
		assert.Contains(t, output, "slug=deploy")
	})
}
