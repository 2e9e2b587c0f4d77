package domain

import (
	"github.com/allisson/maskd/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors.
// All of them are reduced to a bare failure status at the handler boundary
// so that no cryptographic failure reason leaks to clients.
var (
	// ErrInvalidKeySize indicates the secret key is not exactly KeySize bytes.
	//
	// A wrong-sized key supplied as request material is invalid input; an
	// empty or wrong-sized key configured at startup is a deployment error
	// and is reported before the server starts serving.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates an authenticated decryption failure.
	//
	// This occurs when a mask token was sealed under a different key or the
	// ciphertext was tampered with. The specific cause is deliberately not
	// distinguished.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")
)
