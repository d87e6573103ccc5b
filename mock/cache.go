package mock

import (
	"context"

	"github.com/fwojciec/esosearch"
)

var _ esosearch.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of esosearch.CacheStore.
type CacheStore struct {
	ExistsFn func(ctx context.Context, key string) (bool, error)
	ReadFn   func(ctx context.Context, key string) ([]byte, error)
	WriteFn  func(ctx context.Context, key string, data []byte) error
	KeysFn   func(ctx context.Context) ([]string, error)
	ClearFn  func(ctx context.Context) error
}

func (c *CacheStore) Exists(ctx context.Context, key string) (bool, error) {
	return c.ExistsFn(ctx, key)
}

func (c *CacheStore) Read(ctx context.Context, key string) ([]byte, error) {
	return c.ReadFn(ctx, key)
}

func (c *CacheStore) Write(ctx context.Context, key string, data []byte) error {
	return c.WriteFn(ctx, key, data)
}

func (c *CacheStore) Keys(ctx context.Context) ([]string, error) {
	return c.KeysFn(ctx)
}

func (c *CacheStore) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}
