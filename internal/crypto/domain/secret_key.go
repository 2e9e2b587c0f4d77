// Package domain provides the cryptographic domain types for the masking service.
package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	apperrors "github.com/allisson/maskd/internal/errors"
)

// KeySize is the length in bytes of the service secret key.
//
// The key is XChaCha20-Poly1305 key material, so it must be exactly
// 32 bytes (256 bits).
const KeySize = 32

// SecretKey is the long-lived symmetric key held by the service.
//
// The key seals and opens mask tokens. It is owned exclusively by the
// service process: it is never embedded in a response and only crosses
// process boundaries as Base64 text for out-of-band provisioning.
type SecretKey []byte

// GenerateSecretKey produces a new secret key from the system CSPRNG.
//
// A randomness failure is an environment failure, not a request failure,
// and is reported as ErrInternal.
func GenerateSecretKey() (SecretKey, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, fmt.Sprintf("failed to generate secret key: %v", err))
	}
	return SecretKey(key), nil
}

// SecretKeyFromBase64 decodes a Base64-encoded secret key.
//
// Returns an error wrapping ErrInvalidInput if the text is not valid
// standard Base64 or does not decode to exactly KeySize bytes.
func SecretKeyFromBase64(encoded string) (SecretKey, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "secret key is not valid base64")
	}
	if len(raw) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return SecretKey(raw), nil
}

// Base64 returns the standard Base64 text encoding of the key for
// out-of-band storage or transport.
func (k SecretKey) Base64() string {
	return base64.StdEncoding.EncodeToString(k)
}

// Validate checks that the key has the expected length.
func (k SecretKey) Validate() error {
	if len(k) != KeySize {
		return ErrInvalidKeySize
	}
	return nil
}
