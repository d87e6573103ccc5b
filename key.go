package esosearch

import "strings"

// IndexKey is the cache key reserved for the index page. KeyCodec never
// produces a key with a leading dot, so no article can collide with it.
const IndexKey = ".index.html"

var (
	keyEscaper   = strings.NewReplacer(`\`, `\x5c`, "/", `\x2f`)
	keyUnescaper = strings.NewReplacer(`\x5c`, `\`, `\x2f`, "/", `\x2e`, ".")
)

// KeyCodec converts article addresses into flat, filesystem-safe cache keys.
// Keys are the address with Prefix stripped and path separators escaped.
type KeyCodec struct {
	Prefix string
}

// NewKeyCodec returns a codec for articles below prefix,
// e.g. "https://esolangs.org/wiki/".
func NewKeyCodec(prefix string) KeyCodec {
	return KeyCodec{Prefix: prefix}
}

// Encode returns the cache key for address.
// Returns EINVALID if address does not name an article below the prefix.
func (c KeyCodec) Encode(address string) (string, error) {
	name, ok := strings.CutPrefix(address, c.Prefix)
	if !ok {
		return "", Errorf(EINVALID, "address %q is outside of %q", address, c.Prefix)
	}
	if name == "" {
		return "", Errorf(EINVALID, "address %q names no article", address)
	}
	key := keyEscaper.Replace(name)
	if strings.HasPrefix(key, ".") {
		key = `\x2e` + key[1:]
	}
	return key, nil
}

// Decode reverses Encode.
func (c KeyCodec) Decode(key string) (string, error) {
	if key == "" || key == IndexKey {
		return "", Errorf(EINVALID, "key %q names no article", key)
	}
	return c.Prefix + keyUnescaper.Replace(key), nil
}
