package fs_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/esosearch"
	"github.com/fwojciec/esosearch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Page Cache
// Fetched pages are stored verbatim, one file per key

func TestCacheStore_WriteCreatesDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory that does not exist yet
	dir := filepath.Join(t.TempDir(), "cache")
	store := fs.NewCacheStore(dir)

	// When I write a page
	err := store.Write(context.Background(), "Brainfuck", []byte("<p>tape</p>"))

	// Then the directory and file exist with the raw body
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, fs.PagesDir, "Brainfuck"))
	require.NoError(t, err)
	assert.Equal(t, "<p>tape</p>", string(content))
}

func TestCacheStore_ExistsAndRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := fs.NewCacheStore(t.TempDir())

	// Given an empty store, the key is absent
	ok, err := store.Exists(ctx, "Befunge")
	require.NoError(t, err)
	assert.False(t, ok)

	// When I write it
	require.NoError(t, store.Write(ctx, "Befunge", []byte("v>")))

	// Then it exists and reads back
	ok, err = store.Exists(ctx, "Befunge")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := store.Read(ctx, "Befunge")
	require.NoError(t, err)
	assert.Equal(t, "v>", string(data))
}

func TestCacheStore_ReadMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := fs.NewCacheStore(t.TempDir())

	_, err := store.Read(context.Background(), "Malbolge")

	require.Error(t, err)
	assert.Equal(t, esosearch.ENOTFOUND, esosearch.ErrorCode(err))
}

func TestCacheStore_WriteOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := fs.NewCacheStore(t.TempDir())

	require.NoError(t, store.Write(ctx, "Piet", []byte("old")))
	require.NoError(t, store.Write(ctx, "Piet", []byte("new")))

	data, err := store.Read(ctx, "Piet")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCacheStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	store := fs.NewCacheStore(t.TempDir())

	for _, key := range []string{"", ".", "..", "../etc/passwd", "a/b"} {
		err := store.Write(context.Background(), key, []byte("bad"))
		require.Error(t, err, "key %q", key)
		assert.Equal(t, esosearch.EINVALID, esosearch.ErrorCode(err))
		assert.Contains(t, err.Error(), "path traversal")
	}
}

func TestCacheStore_KeysSkipsTemporaryFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store := fs.NewCacheStore(dir)
	require.NoError(t, store.Write(ctx, "Zepto", []byte("z")))
	require.NoError(t, store.Write(ctx, esosearch.IndexKey, []byte("index")))
	require.NoError(t, store.Write(ctx, "Aheui", []byte("a")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, fs.PagesDir, ".tmp-123"), []byte("partial"), 0644))

	keys, err := store.Keys(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{esosearch.IndexKey, "Aheui", "Zepto"}, keys)
}

func TestCacheStore_KeysOnMissingDirectory(t *testing.T) {
	t.Parallel()

	store := fs.NewCacheStore(filepath.Join(t.TempDir(), "absent"))

	keys, err := store.Keys(context.Background())

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestCacheStore_ClearRemovesDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	store := fs.NewCacheStore(dir)
	require.NoError(t, store.Write(ctx, "Brainfuck", []byte("x")))

	require.NoError(t, store.Clear(ctx))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "cache directory should be removed")
	ok, err := store.Exists(ctx, "Brainfuck")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStore_LeavesForeignFilesAlone(t *testing.T) {
	t.Parallel()

	// Given a cache directory shared with files the store did not write
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projects", "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects", "src", "main.go"), []byte("package main"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0644))
	store := fs.NewCacheStore(dir)
	require.NoError(t, store.Write(ctx, "Brainfuck", []byte("x")))

	// Then only its own pages are listed
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Brainfuck"}, keys)

	// And clearing removes them but keeps everything else
	require.NoError(t, store.Clear(ctx))

	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, "projects", "src", "main.go"))
	assert.NoDirExists(t, filepath.Join(dir, fs.PagesDir))
	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestCacheStore_ClearOnMissingDirectory(t *testing.T) {
	t.Parallel()

	store := fs.NewCacheStore(filepath.Join(t.TempDir(), "absent"))

	assert.NoError(t, store.Clear(context.Background()))
}

func TestCacheStore_ConcurrentWritesToDistinctKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := fs.NewCacheStore(t.TempDir())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("Lang%d", i)
			assert.NoError(t, store.Write(ctx, key, []byte(key)))
		}()
	}
	wg.Wait()

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 20)
	for _, key := range keys {
		data, err := store.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, key, string(data))
	}
}
