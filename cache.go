package esosearch

import "context"

// CacheStore persists raw page content keyed by KeyCodec output.
// A record is either present or absent; there is no expiry.
type CacheStore interface {
	// Exists reports whether a record is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Read returns the record stored under key.
	// Returns ENOTFOUND if no record exists.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores data under key, creating the backing storage if needed.
	// An existing record is overwritten. Readers never observe a partial write.
	Write(ctx context.Context, key string, data []byte) error

	// Keys returns all stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Clear removes every record. File-based stores also remove the
	// directory they own; database-backed stores keep an empty, compacted
	// database.
	Clear(ctx context.Context) error
}
