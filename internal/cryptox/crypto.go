// Package cryptox implements the cryptographic core of lifetrack:
// password-based key derivation and authenticated encryption of
// JSON-serializable values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/lifetrack/internal/common"
)

const (
	// SaltSize is the number of random bytes in an account salt.
	// The salt is stored hex-encoded, so the persisted string is twice as long.
	SaltSize = 16

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// MinIterations is the lowest PBKDF2 iteration count DeriveKey accepts.
	MinIterations = 100000
)

// Blob is the persisted shape of an encrypted value: AEAD ciphertext
// (which includes the 16-byte authentication tag) plus the nonce used
// to produce it. The nonce is not secret and is stored alongside.
type Blob struct {
	Ciphertext []byte `json:"ciphertext"`
	Nonce      []byte `json:"nonce"`
}

// GenerateSalt returns a fresh account salt: SaltSize random bytes,
// hex-encoded. The salt is public and stored in cleartext so that a key
// can be derived before any decryption occurs.
func GenerateSalt() (string, error) {
	return common.MakeRandHexString(SaltSize)
}

// DeriveKey derives a 256-bit symmetric key from a password and a
// hex-encoded salt using PBKDF2-HMAC-SHA256.
//
// The call is deterministic: the same (password, salt, iterations) always
// yields the same key, which is what lets login reproduce the key used at
// signup. Iteration counts below MinIterations are rejected, as are empty
// passwords and salts that are not SaltSize bytes of hex.
//
// The password is not retained after the call returns.
func DeriveKey(password string, salt string, iterations int) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", common.ErrInvalidInput)
	}
	if raw, err := hex.DecodeString(salt); err != nil || len(raw) != SaltSize {
		return nil, fmt.Errorf("%w: malformed salt", common.ErrInvalidInput)
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: iteration count %d below minimum %d",
			common.ErrInvalidInput, iterations, MinIterations)
	}
	// The hex string itself is the salt input, not the decoded bytes,
	// so the persisted cleartext value feeds the KDF unchanged.
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, KeySize, sha256.New), nil
}

// Encrypt serializes the given value to JSON and encrypts it using AES-GCM
// under the provided key. A new random NonceSize-byte nonce is generated for
// every call, so no nonce is ever reused under the same key.
func Encrypt(v any, key []byte) (*Blob, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(NonceSize)
	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)

	return &Blob{Ciphertext: ciphertext, Nonce: nonce}, nil
}

// Decrypt authenticates and decrypts the blob under the given key and
// unmarshals the plaintext JSON into v.
//
// A failed authentication tag (wrong key, corrupted data, or tampering)
// yields common.ErrAuthenticationFailed - this is the mechanism by which a
// wrong password is detected, since no separate password hash exists.
// Plaintext that does not match the expected shape of v yields
// common.ErrDeserialization.
func Decrypt(blob *Blob, key []byte, v any) error {
	if blob == nil {
		return fmt.Errorf("%w: nil blob", common.ErrInvalidInput)
	}

	// GCM panics on a wrong-length nonce, so a corrupt persisted row must
	// be rejected here rather than crash the process.
	if len(blob.Nonce) != NonceSize {
		return fmt.Errorf("%w: nonce length %d", common.ErrAuthenticationFailed, len(blob.Nonce))
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, blob.Nonce, blob.Ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrAuthenticationFailed, err)
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDeserialization, err)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	return aesgcm, nil
}
