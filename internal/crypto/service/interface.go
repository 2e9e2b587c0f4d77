// Package service provides the symmetric encryption primitive used to seal
// and open mask tokens.
package service

// Sealer defines the interface for authenticated symmetric encryption of
// self-contained blobs.
//
// A sealed blob carries its own nonce, so the output of Seal is a single
// opaque byte sequence that can cross the wire as one Base64 field and be
// handed back to Open unchanged.
type Sealer interface {
	// Seal encrypts and authenticates plaintext, returning nonce||ciphertext.
	Seal(plaintext []byte) ([]byte, error)

	// Open authenticates and decrypts a sealed blob produced by Seal.
	// Fails if the blob was sealed under a different key or was modified.
	Open(box []byte) ([]byte, error)
}
