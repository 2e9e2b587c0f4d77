// Package service implements the cryptographic core of the masking protocol.
//
// The oracle is the only component that touches the secret key and the raw
// mask material. It is stateless: issuance consumes fresh randomness per
// call and application is a pure function of (key, token, data), so
// concurrent invocations are independent and need no synchronization.
package service

import (
	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	cryptoService "github.com/allisson/maskd/internal/crypto/service"
	oprfDomain "github.com/allisson/maskd/internal/oprf/domain"
)

// MaskOracle defines the two cryptographic operations of the protocol.
//
// The contract-violating request shape (token without data) never reaches
// the oracle; it is rejected at the handler boundary before any
// cryptographic work is done.
type MaskOracle interface {
	// Issue mints a fresh PRF mask and returns it sealed under key as an
	// opaque mask token. The service keeps no record of issued tokens.
	Issue(key cryptoDomain.SecretKey) ([]byte, error)

	// Apply opens a sealed mask token under key and applies the recovered
	// mask to data. Fails if the token was sealed under a different key or
	// has been tampered with.
	Apply(key cryptoDomain.SecretKey, token []byte, data *oprfDomain.Data) (*oprfDomain.Data, error)
}

// maskOracle implements MaskOracle over the ristretto255 PRF primitives and
// the XChaCha20-Poly1305 sealer.
type maskOracle struct{}

// NewMaskOracle creates a new mask oracle.
func NewMaskOracle() MaskOracle {
	return &maskOracle{}
}

// Issue generates a random mask and seals its scalar encoding under key.
func (o *maskOracle) Issue(key cryptoDomain.SecretKey) ([]byte, error) {
	sealer, err := cryptoService.NewXChaCha20Poly1305(key)
	if err != nil {
		return nil, err
	}

	raw, err := oprfDomain.NewMask().Bytes()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(raw)

	return sealer.Seal(raw)
}

// Apply opens the token, recovers the mask scalar, and masks data with it.
func (o *maskOracle) Apply(
	key cryptoDomain.SecretKey,
	token []byte,
	data *oprfDomain.Data,
) (*oprfDomain.Data, error) {
	// Contract guard: the handler rejects this shape before dispatch, but
	// the oracle still fails loudly rather than substituting a default.
	if data == nil {
		return nil, oprfDomain.ErrMissingData
	}

	sealer, err := cryptoService.NewXChaCha20Poly1305(key)
	if err != nil {
		return nil, err
	}

	raw, err := sealer.Open(token)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(raw)

	mask, err := oprfDomain.MaskFromBytes(raw)
	if err != nil {
		return nil, err
	}

	return mask.Apply(data), nil
}
