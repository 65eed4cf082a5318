// Package singletons stores the encrypted singleton blobs ("user",
// "settings"): one row per store name, holding AEAD ciphertext and its
// nonce. The blob is opaque to this layer; encryption and decryption
// happen above it.
package singletons

import (
	"context"

	"github.com/dmitrijs2005/lifetrack/internal/cryptox"
)

// Store names of the two encrypted singletons.
const (
	StoreUser     = "user"
	StoreSettings = "settings"
)

type Repository interface {
	// Get returns the blob stored under name, or nil if absent.
	Get(ctx context.Context, name string) (*cryptox.Blob, error)

	// Put replaces the blob stored under name. Ciphertext and nonce land
	// in a single statement; a blob without its nonce is never observable.
	Put(ctx context.Context, name string, blob *cryptox.Blob) error

	Delete(ctx context.Context, name string) error
	Clear(ctx context.Context) error
}
