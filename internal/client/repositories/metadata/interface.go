// Package metadata stores small cleartext key/value pairs that must be
// readable before any key material exists - most importantly the account
// salt, which key derivation needs before the first decryption can happen.
package metadata

import "context"

// SaltKey is the metadata key under which the account salt is stored.
const SaltKey = "salt"

type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
