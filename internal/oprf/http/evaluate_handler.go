// Package http provides the HTTP handler for the masking protocol endpoint.
package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	oprfDomain "github.com/allisson/maskd/internal/oprf/domain"
	oprfUseCase "github.com/allisson/maskd/internal/oprf/usecase"
)

// maxRequestBodySize bounds the request body read. A well-formed request
// carries at most one token and one data point, both small.
const maxRequestBodySize = 64 * 1024

// EvaluateHandler handles HTTP requests for the masking protocol.
// Every evaluation outcome, including malformed input, is reported in-band
// through the response status field with HTTP 200.
type EvaluateHandler struct {
	evaluateUseCase oprfUseCase.EvaluateUseCase // Business logic for issuance and application
	maskKey         cryptoDomain.SecretKey      // Service masking key
	logger          *slog.Logger                // Structured logger for request handling
}

// NewEvaluateHandler creates a new evaluate handler with required dependencies.
func NewEvaluateHandler(
	evaluateUseCase oprfUseCase.EvaluateUseCase,
	maskKey cryptoDomain.SecretKey,
	logger *slog.Logger,
) *EvaluateHandler {
	return &EvaluateHandler{
		evaluateUseCase: evaluateUseCase,
		maskKey:         maskKey,
		logger:          logger,
	}
}

// EvaluateHandler evaluates a masking request.
// POST /v1/oprf/evaluate - Issues a sealed mask token or applies one to a data point.
// Returns 200 OK with {"status": "success", ...} or {"status": "failure"}.
func (h *EvaluateHandler) EvaluateHandler(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRequestBodySize))
	if err != nil {
		h.logger.Warn("failed to read request body", slog.Any("error", err))
		c.JSON(http.StatusOK, oprfDomain.NewFailureResponse())
		return
	}

	req, err := oprfDomain.ParseRequest(body)
	if err != nil {
		h.logger.Debug("malformed request body", slog.Any("error", err))
		c.JSON(http.StatusOK, oprfDomain.NewFailureResponse())
		return
	}

	response := h.evaluateUseCase.Evaluate(c.Request.Context(), h.maskKey, req)
	c.JSON(http.StatusOK, response)
}
