package service

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	apperrors "github.com/allisson/maskd/internal/errors"
)

// XChaCha20Poly1305Sealer implements the Sealer interface using XChaCha20-Poly1305.
//
// XChaCha20-Poly1305 extends ChaCha20-Poly1305 with a 24-byte nonce, which is
// large enough to be generated randomly per operation without coordination.
// That property matters here: every mask token is sealed independently and
// the service keeps no state between requests.
type XChaCha20Poly1305Sealer struct {
	aead cipher.AEAD
}

// NewXChaCha20Poly1305 creates a new XChaCha20-Poly1305 sealer.
//
// The key must be exactly 32 bytes (256 bits). Returns an error if the key
// size is invalid or cipher initialization fails.
func NewXChaCha20Poly1305(key cryptoDomain.SecretKey) (*XChaCha20Poly1305Sealer, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create XChaCha20-Poly1305 cipher: %w", err)
	}

	return &XChaCha20Poly1305Sealer{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random 24-byte nonce and returns
// nonce||ciphertext as one opaque blob. The ciphertext includes the
// Poly1305 authentication tag.
func (s *XChaCha20Poly1305Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, fmt.Sprintf("failed to generate nonce: %v", err))
	}

	// Seal appends to the nonce slice, producing nonce||ciphertext.
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open verifies and decrypts a blob produced by Seal.
//
// Returns ErrDecryptionFailed if the blob is too short to carry a nonce,
// was sealed under a different key, or has been modified. The cause is not
// distinguished further.
func (s *XChaCha20Poly1305Sealer) Open(box []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(box) < nonceSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := s.aead.Open(nil, box[:nonceSize], box[nonceSize:], nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
