// Package domain provides the pseudo-random function primitives and the wire
// contract for the masking protocol.
//
// The PRF is instantiated over the ristretto255 group: a mask is a random
// scalar, a data value is a group element, and applying a mask is scalar
// multiplication. Masking is deterministic for a fixed (mask, data) pair,
// while the masked value reveals nothing about the data to a party lacking
// the mask.
package domain

import (
	"crypto/rand"

	circl "github.com/cloudflare/circl/group"
)

var group = circl.Ristretto255

// Mask is a PRF mask value: a scalar in the ristretto255 group.
//
// Masks only leave the service sealed inside an encrypted mask token.
type Mask struct {
	s circl.Scalar
}

// NewMask generates a fresh uniformly random mask.
func NewMask() *Mask {
	return &Mask{s: group.RandomScalar(rand.Reader)}
}

// MaskFromBytes deserializes a 32-byte scalar encoding into a mask.
// Returns ErrMalformedMask if the encoding is not a valid scalar.
func MaskFromBytes(raw []byte) (*Mask, error) {
	s := group.NewScalar()
	if err := s.UnmarshalBinary(raw); err != nil {
		return nil, ErrMalformedMask
	}
	return &Mask{s: s}, nil
}

// Bytes serializes the mask into its canonical 32-byte scalar encoding.
func (m *Mask) Bytes() ([]byte, error) {
	return m.s.MarshalBinary()
}

// Apply masks a data value by scalar multiplication.
//
// Applying the same mask to the same data value always yields the same
// result (the PRF property).
func (m *Mask) Apply(d *Data) *Data {
	return &Data{e: group.NewElement().Mul(d.e, m.s)}
}

// Equal reports whether two masks are the same scalar.
func (m *Mask) Equal(other *Mask) bool {
	return m.s.IsEqual(other.s)
}
