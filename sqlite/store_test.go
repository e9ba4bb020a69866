package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/docshelf"
	"github.com/fwojciec/docshelf/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomStore_List(t *testing.T) {
	t.Parallel()

	t.Run("returns empty list for new database", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)

		docs, err := store.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("returns documents in insertion order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)
		ctx := context.Background()

		for _, slug := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, store.Upsert(ctx, &docshelf.Document{
				Slug: slug, Title: slug, Content: "# " + slug, Topic: "T",
			}))
		}

		docs, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "zeta", docs[0].Slug)
		assert.Equal(t, "alpha", docs[1].Slug)
		assert.Equal(t, "mid", docs[2].Slug)
	})

	t.Run("returns error for unparseable timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)
		ctx := context.Background()

		_, err := db.ExecContext(ctx, `
			INSERT INTO custom_documents (slug, position, title, content, topic, created_at)
			VALUES ('bad', 0, 'Bad', 'x', 'T', 'yesterday')
		`)
		require.NoError(t, err)

		_, err = store.List(ctx)
		require.Error(t, err)
		assert.Equal(t, docshelf.ECORRUPT, docshelf.ErrorCode(err))
		assert.Contains(t, err.Error(), "created_at")
	})
}

func TestCustomStore_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)
		ctx := context.Background()

		created := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.UTC)
		doc := &docshelf.Document{
			Slug:      "deploy",
			Title:     "Deploying",
			Content:   "# Deploying\n\nShip it.",
			Topic:     "Operations",
			Subtopic:  "Release",
			CreatedAt: created,
		}
		require.NoError(t, store.Upsert(ctx, doc))

		docs, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, doc.Slug, docs[0].Slug)
		assert.Equal(t, doc.Title, docs[0].Title)
		assert.Equal(t, doc.Content, docs[0].Content)
		assert.Equal(t, doc.Topic, docs[0].Topic)
		assert.Equal(t, doc.Subtopic, docs[0].Subtopic)
		assert.True(t, created.Equal(docs[0].CreatedAt))
	})

	t.Run("replaces existing slug and keeps position", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)
		ctx := context.Background()

		require.NoError(t, store.Upsert(ctx, &docshelf.Document{Slug: "a", Title: "A", Content: "old", Topic: "T"}))
		require.NoError(t, store.Upsert(ctx, &docshelf.Document{Slug: "b", Title: "B", Content: "b", Topic: "T"}))
		require.NoError(t, store.Upsert(ctx, &docshelf.Document{Slug: "a", Title: "A2", Content: "new", Topic: "U"}))

		docs, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0].Slug)
		assert.Equal(t, "A2", docs[0].Title)
		assert.Equal(t, "new", docs[0].Content)
		assert.Equal(t, "U", docs[0].Topic)
		assert.Equal(t, "b", docs[1].Slug)
	})

	t.Run("returns validation error without writing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)
		ctx := context.Background()

		err := store.Upsert(ctx, &docshelf.Document{Slug: "a", Content: "x", Topic: "T"})
		require.Error(t, err)
		assert.Equal(t, docshelf.EINVALID, docshelf.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM custom_documents").Scan(&count))
		assert.Equal(t, 0, count)
	})

	t.Run("many upserts keep one row per slug", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCustomStore(db)
		ctx := context.Background()

		for i := 0; i < 20; i++ {
			require.NoError(t, store.Upsert(ctx, &docshelf.Document{
				Slug:    fmt.Sprintf("doc-%d", i%5),
				Title:   fmt.Sprintf("Doc %d", i),
				Content: "x",
				Topic:   "T",
			}))
		}

		docs, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 5)
		for i, doc := range docs {
			assert.Equal(t, fmt.Sprintf("doc-%d", i), doc.Slug)
			assert.Equal(t, fmt.Sprintf("Doc %d", 15+i), doc.Title)
		}
	})
}
