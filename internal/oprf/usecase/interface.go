package usecase

import (
	"context"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	oprfDomain "github.com/allisson/maskd/internal/oprf/domain"
)

// EvaluateUseCase defines the protocol request handler.
//
// Evaluate is total over untrusted input: every failure arising from the
// request (bad Base64, undecryptable tokens, contract-violating shapes)
// is reduced to a failure response with no error detail. It never returns
// an error and never panics on request material.
type EvaluateUseCase interface {
	Evaluate(ctx context.Context, key cryptoDomain.SecretKey, req oprfDomain.Request) oprfDomain.Response
}
