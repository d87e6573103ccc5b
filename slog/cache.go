package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/esosearch"
)

// Ensure LoggingCacheStore implements esosearch.CacheStore.
var _ esosearch.CacheStore = (*LoggingCacheStore)(nil)

// LoggingCacheStore wraps a CacheStore with debug logging of reads and
// writes. Exists and Keys are delegated silently.
type LoggingCacheStore struct {
	next   esosearch.CacheStore
	logger *slog.Logger
}

// NewLoggingCacheStore creates a new LoggingCacheStore.
func NewLoggingCacheStore(next esosearch.CacheStore, logger *slog.Logger) *LoggingCacheStore {
	return &LoggingCacheStore{next: next, logger: logger}
}

// Exists delegates to the wrapped store.
func (s *LoggingCacheStore) Exists(ctx context.Context, key string) (bool, error) {
	return s.next.Exists(ctx, key)
}

// Read delegates to the wrapped store and logs the read.
func (s *LoggingCacheStore) Read(ctx context.Context, key string) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache read",
			"key", key,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, key)
}

// Write delegates to the wrapped store and logs the write.
func (s *LoggingCacheStore) Write(ctx context.Context, key string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("cache write",
			"key", key,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, key, data)
}

// Keys delegates to the wrapped store.
func (s *LoggingCacheStore) Keys(ctx context.Context) ([]string, error) {
	return s.next.Keys(ctx)
}

// Clear delegates to the wrapped store and logs the operation.
func (s *LoggingCacheStore) Clear(ctx context.Context) (err error) {
	defer func() {
		s.logger.Info("cache cleared", "err", err)
	}()
	return s.next.Clear(ctx)
}
