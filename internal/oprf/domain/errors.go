package domain

import (
	"github.com/allisson/maskd/internal/errors"
)

// Protocol error definitions.
//
// All of these arise from untrusted request material and wrap ErrInvalidInput
// so the handler boundary reduces them to a bare failure status.
var (
	// ErrMalformedMask indicates a mask encoding that is not a valid scalar.
	ErrMalformedMask = errors.Wrap(errors.ErrInvalidInput, "malformed mask")

	// ErrMalformedData indicates a data encoding that is not a valid group element.
	ErrMalformedData = errors.Wrap(errors.ErrInvalidInput, "malformed data")

	// ErrMissingData indicates a mask token was supplied without a data value.
	// The request shape is a contract violation and is rejected before any
	// cryptographic work is done.
	ErrMissingData = errors.Wrap(errors.ErrInvalidInput, "data to be masked must be supplied")
)
