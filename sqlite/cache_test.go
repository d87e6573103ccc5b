package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/esosearch"
	"github.com/fwojciec/esosearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStore_Write(t *testing.T) {
	t.Parallel()

	t.Run("stores raw bytes", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()

		err := store.Write(ctx, "Brainfuck", []byte("<pre>+[-&gt;]</pre>"))
		require.NoError(t, err)

		data, err := store.Read(ctx, "Brainfuck")
		require.NoError(t, err)
		assert.Equal(t, "<pre>+[-&gt;]</pre>", string(data))
	})

	t.Run("overwrites existing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCacheStore(db)
		ctx := context.Background()

		require.NoError(t, store.Write(ctx, "Piet", []byte("old")))
		require.NoError(t, store.Write(ctx, "Piet", []byte("new")))

		data, err := store.Read(ctx, "Piet")
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		var count int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages WHERE key = ?", "Piet").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("records id, content hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewCacheStore(db)
		ctx := context.Background()

		require.NoError(t, store.Write(ctx, "Befunge", []byte("v>")))

		var id, hash, fetchedAt string
		err := db.QueryRowContext(ctx, "SELECT id, content_hash, fetched_at FROM pages WHERE key = ?", "Befunge").
			Scan(&id, &hash, &fetchedAt)
		require.NoError(t, err)
		assert.Len(t, id, 36)
		assert.Len(t, hash, 16)
		assert.NotEmpty(t, fetchedAt)
	})

	t.Run("stores empty bodies", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.Write(ctx, "Empty", nil))

		data, err := store.Read(ctx, "Empty")
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))

		err := store.Write(context.Background(), "", []byte("x"))
		require.Error(t, err)
		assert.Equal(t, esosearch.EINVALID, esosearch.ErrorCode(err))
	})
}

func TestCacheStore_Exists(t *testing.T) {
	t.Parallel()

	store := sqlite.NewCacheStore(setupTestDB(t))
	ctx := context.Background()

	ok, err := store.Exists(ctx, "Malbolge")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Write(ctx, "Malbolge", []byte("(=<`")))

	ok, err = store.Exists(ctx, "Malbolge")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCacheStore_Read(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND when absent", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCacheStore(setupTestDB(t))

		_, err := store.Read(context.Background(), "Nope")

		require.Error(t, err)
		assert.Equal(t, esosearch.ENOTFOUND, esosearch.ErrorCode(err))
	})
}

func TestCacheStore_KeysAndClear(t *testing.T) {
	t.Parallel()

	store := sqlite.NewCacheStore(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "Zepto", []byte("z")))
	require.NoError(t, store.Write(ctx, esosearch.IndexKey, []byte("i")))
	require.NoError(t, store.Write(ctx, "Aheui", []byte("a")))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{esosearch.IndexKey, "Aheui", "Zepto"}, keys)

	require.NoError(t, store.Clear(ctx))

	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestCacheStore_ClearCompactsFileDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	store := sqlite.NewCacheStore(db)

	page := []byte(strings.Repeat("<p>tape</p>", 20000))
	for i := range 10 {
		require.NoError(t, store.Write(ctx, fmt.Sprintf("Lang%d", i), page))
	}

	require.NoError(t, store.Clear(ctx))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	var free int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA freelist_count").Scan(&free))
	assert.Zero(t, free)
	assert.FileExists(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(page)))
}
