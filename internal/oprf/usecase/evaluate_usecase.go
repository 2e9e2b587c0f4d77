// Package usecase implements the protocol request handler for the masking
// service.
//
// The handler decodes a transport-agnostic request into the oracle's input
// shape, dispatches on the normalized operation, and re-encodes the result
// into a response object. All failure conditions arising from untrusted
// input are translated into a failure status rather than raised to the
// caller; no internal error detail (decoding vs. decryption vs. contract
// violation) is distinguishable from the response.
//
// Per-request state machine:
//
//	START → decode → {issue | apply | invalid} → oracle (issue/apply only) → {success | failure} → END
//
// There is no cross-request state: the handler shares only the immutable
// secret key between invocations.
package usecase

import (
	"context"
	"encoding/base64"
	"log/slog"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	oprfDomain "github.com/allisson/maskd/internal/oprf/domain"
	oprfService "github.com/allisson/maskd/internal/oprf/service"
)

// evaluateUseCase implements EvaluateUseCase over a MaskOracle.
type evaluateUseCase struct {
	oracle oprfService.MaskOracle
	logger *slog.Logger
}

// NewEvaluateUseCase creates the protocol request handler.
func NewEvaluateUseCase(oracle oprfService.MaskOracle, logger *slog.Logger) EvaluateUseCase {
	return &evaluateUseCase{
		oracle: oracle,
		logger: logger,
	}
}

// Evaluate processes one protocol request.
//
// Decoding of both optional fields happens before dispatch, so a malformed
// field fails the request even when the selected operation would not
// consume it. The contract-violating shape (mask without data) is rejected
// here, before the oracle is invoked, so no cryptographic work runs on
// contractually incomplete input.
func (u *evaluateUseCase) Evaluate(
	ctx context.Context,
	key cryptoDomain.SecretKey,
	req oprfDomain.Request,
) oprfDomain.Response {
	if err := key.Validate(); err != nil {
		// Key problems are service misconfiguration, not request failures;
		// they are logged at error level but still reduced to a failure
		// response so the handler stays total.
		u.logger.Error("evaluate called with invalid secret key", slog.Any("error", err))
		return oprfDomain.NewFailureResponse()
	}

	if err := req.Validate(); err != nil {
		u.logger.Debug("rejected malformed request", slog.Any("error", err))
		return oprfDomain.NewFailureResponse()
	}

	token, data, err := decodeArguments(req)
	if err != nil {
		u.logger.Debug("rejected undecodable request", slog.Any("error", err))
		return oprfDomain.NewFailureResponse()
	}

	switch req.Operation() {
	case oprfDomain.OpIssue:
		return u.issue(ctx, key)
	case oprfDomain.OpApply:
		return u.apply(ctx, key, token, data)
	default:
		u.logger.Debug("rejected mask token without data")
		return oprfDomain.NewFailureResponse()
	}
}

// issue mints a fresh sealed mask token.
func (u *evaluateUseCase) issue(ctx context.Context, key cryptoDomain.SecretKey) oprfDomain.Response {
	token, err := u.oracle.Issue(key)
	if err != nil {
		u.logger.Error("mask issuance failed", slog.Any("error", err))
		return oprfDomain.NewFailureResponse()
	}

	return oprfDomain.NewMaskResponse(base64.StdEncoding.EncodeToString(token))
}

// apply spends a mask token against a data value.
func (u *evaluateUseCase) apply(
	ctx context.Context,
	key cryptoDomain.SecretKey,
	token []byte,
	data *oprfDomain.Data,
) oprfDomain.Response {
	masked, err := u.oracle.Apply(key, token, data)
	if err != nil {
		u.logger.Debug("mask application failed", slog.Any("error", err))
		return oprfDomain.NewFailureResponse()
	}

	raw, err := masked.Bytes()
	if err != nil {
		u.logger.Error("failed to encode masked data", slog.Any("error", err))
		return oprfDomain.NewFailureResponse()
	}

	return oprfDomain.NewDataResponse(base64.StdEncoding.EncodeToString(raw))
}

// decodeArguments extracts the optional token and data value from the
// already shape-validated request. Base64 decoding cannot fail after
// validation, but the group element decoding of a data value can.
func decodeArguments(req oprfDomain.Request) ([]byte, *oprfDomain.Data, error) {
	var token []byte
	if req.Mask != nil {
		raw, err := base64.StdEncoding.DecodeString(req.Mask[0])
		if err != nil {
			return nil, nil, err
		}
		token = raw
	}

	var data *oprfDomain.Data
	if req.Data != nil {
		raw, err := base64.StdEncoding.DecodeString(req.Data[0])
		if err != nil {
			return nil, nil, err
		}
		data, err = oprfDomain.DataFromBytes(raw)
		if err != nil {
			return nil, nil, err
		}
	}

	return token, data, nil
}
