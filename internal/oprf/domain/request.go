package domain

import (
	"encoding/json"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/maskd/internal/errors"
	customValidation "github.com/allisson/maskd/internal/validation"
)

// Operation identifies the protocol operation encoded by a request shape.
//
// The wire contract dispatches on field presence rather than an explicit
// operation tag; requests are normalized into this exhaustive three-way
// variant before any protocol logic runs.
type Operation int

const (
	// OpIssue mints a fresh encrypted mask token. Selected when the mask
	// field is absent, regardless of the data field.
	OpIssue Operation = iota

	// OpApply applies a previously issued mask token to a data value.
	// Selected when both fields are present.
	OpApply

	// OpInvalid is the contract-violating shape: a mask token without a
	// data value. It is rejected without invoking the oracle.
	OpInvalid
)

// String returns the operation name for logging and metrics labels.
func (o Operation) String() string {
	switch o {
	case OpIssue:
		return "issue"
	case OpApply:
		return "apply"
	default:
		return "invalid"
	}
}

// Request is the transport-agnostic protocol request.
//
// The mask and data fields, when present, are single-element ordered
// sequences of standard Base64 text. The sequence wrapper is part of the
// wire contract (reserved for future batching) and must be preserved even
// for one element.
type Request struct {
	Mask []string `json:"mask,omitempty"`
	Data []string `json:"data,omitempty"`
}

// ParseRequest decodes the JSON text form of a request.
//
// This is the single point where the raw-text request shape is resolved
// into the structured form; all protocol logic operates on Request.
// Returns an error wrapping ErrInvalidInput for any malformed JSON.
func ParseRequest(raw []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return Request{}, apperrors.Wrap(apperrors.ErrInvalidInput, "request is not valid JSON")
	}
	return req, nil
}

// Validate checks the shape invariants of the request: each field, when
// present, must be a single-element sequence of valid Base64 text.
// Returns an error wrapping ErrInvalidInput on any violation.
func (r Request) Validate() error {
	return customValidation.WrapValidationError(validation.ValidateStruct(&r,
		validation.Field(&r.Mask,
			validation.When(r.Mask != nil,
				validation.Required,
				validation.Length(1, 1),
				validation.Each(validation.Required, customValidation.Base64),
			),
		),
		validation.Field(&r.Data,
			validation.When(r.Data != nil,
				validation.Required,
				validation.Length(1, 1),
				validation.Each(validation.Required, customValidation.Base64),
			),
		),
	))
}

// Operation derives the tagged operation from field presence.
func (r Request) Operation() Operation {
	switch {
	case r.Mask == nil:
		return OpIssue
	case r.Data != nil:
		return OpApply
	default:
		return OpInvalid
	}
}
