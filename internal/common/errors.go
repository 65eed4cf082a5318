// Package common defines shared constants and sentinel errors used across
// the lifetrack core. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Validation errors (malformed arguments, caller bug).
	ErrInvalidInput = errors.New("invalid input")

	// Crypto errors. ErrAuthenticationFailed covers both a wrong password
	// and tampered ciphertext; the two cases are indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrDeserialization      = errors.New("deserialization failed")

	// Repository-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Account/session lifecycle errors. ErrAccountNotFound also matches
	// ErrNotFound so callers can treat it as a missing record.
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = fmt.Errorf("%w: account not initialized", ErrNotFound)
	ErrSessionExpired  = errors.New("session expired")
)
