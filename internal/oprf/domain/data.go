package domain

import (
	circl "github.com/cloudflare/circl/group"
)

// dataDST is the domain separation tag for hashing arbitrary input into the
// PRF domain. Changing it changes every derived data value, so it is fixed
// for the lifetime of the wire protocol.
var dataDST = []byte("maskd/v1:data")

// Data is an element of the PRF input/output domain: a ristretto255 group
// element. Clients typically derive data values by hashing their raw input.
type Data struct {
	e circl.Element
}

// HashToData hashes arbitrary input into the PRF domain.
func HashToData(input []byte) *Data {
	return &Data{e: group.HashToElement(input, dataDST)}
}

// DataFromBytes deserializes a 32-byte element encoding into a data value.
// Returns ErrMalformedData if the encoding is not a valid group element.
func DataFromBytes(raw []byte) (*Data, error) {
	e := group.NewElement()
	if err := e.UnmarshalBinary(raw); err != nil {
		return nil, ErrMalformedData
	}
	return &Data{e: e}, nil
}

// Bytes serializes the data value into its canonical 32-byte encoding.
func (d *Data) Bytes() ([]byte, error) {
	return d.e.MarshalBinary()
}

// Equal reports whether two data values are the same group element.
func (d *Data) Equal(other *Data) bool {
	return d.e.IsEqual(other.e)
}
