// Package fs provides a file-based cache of fetched pages.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/esosearch"
)

// tempPrefix marks in-flight writes. Article keys never start with a dot.
const tempPrefix = ".tmp-"

// PagesDir is the subdirectory of the cache directory that holds the pages.
// The store only ever lists or deletes files below it.
const PagesDir = "esosearch-pages"

// Ensure CacheStore implements esosearch.CacheStore at compile time.
var _ esosearch.CacheStore = (*CacheStore)(nil)

// CacheStore implements esosearch.CacheStore with one file per key under
// PagesDir. Files hold the raw response body verbatim. Writes go to a
// temporary file in the same directory and are renamed into place.
type CacheStore struct {
	dir string
}

// NewCacheStore creates a CacheStore rooted at dir.
// The directory is created on first write.
func NewCacheStore(dir string) *CacheStore {
	return &CacheStore{dir: dir}
}

// Dir returns the cache directory.
func (s *CacheStore) Dir() string {
	return s.dir
}

func (s *CacheStore) pagesDir() string {
	return filepath.Join(s.dir, PagesDir)
}

func (s *CacheStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/`+string(os.PathSeparator)) {
		return "", esosearch.Errorf(esosearch.EINVALID, "invalid cache key %q: path traversal", key)
	}
	return filepath.Join(s.pagesDir(), key), nil
}

func (s *CacheStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := s.path(key)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (s *CacheStore) Read(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, esosearch.Errorf(esosearch.ENOTFOUND, "%q not in cache", key)
	}
	return data, err
}

func (s *CacheStore) Write(ctx context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.pagesDir(), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.pagesDir(), tempPrefix+"*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *CacheStore) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.pagesDir())
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), tempPrefix) {
			continue
		}
		keys = append(keys, e.Name())
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes PagesDir, then the cache directory itself if nothing else
// lives there.
func (s *CacheStore) Clear(ctx context.Context) error {
	if err := os.RemoveAll(s.pagesDir()); err != nil {
		return err
	}
	if err := os.Remove(s.dir); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		if entries, rerr := os.ReadDir(s.dir); rerr == nil && len(entries) > 0 {
			return nil
		}
		return err
	}
	return nil
}
