package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/maskd/internal/crypto/domain"
	"github.com/allisson/maskd/internal/metrics"
	oprfDomain "github.com/allisson/maskd/internal/oprf/domain"
)

// evaluateUseCaseWithMetrics decorates EvaluateUseCase with metrics instrumentation.
type evaluateUseCaseWithMetrics struct {
	next    EvaluateUseCase
	metrics metrics.BusinessMetrics
}

// NewEvaluateUseCaseWithMetrics wraps an EvaluateUseCase with metrics recording.
func NewEvaluateUseCaseWithMetrics(useCase EvaluateUseCase, m metrics.BusinessMetrics) EvaluateUseCase {
	return &evaluateUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Evaluate records one operation and its duration per protocol request.
// The operation label is the normalized request operation and the status
// label is the response status, so rejected shapes and failed applications
// are visible separately in the metrics.
func (e *evaluateUseCaseWithMetrics) Evaluate(
	ctx context.Context,
	key cryptoDomain.SecretKey,
	req oprfDomain.Request,
) oprfDomain.Response {
	start := time.Now()
	resp := e.next.Evaluate(ctx, key, req)

	operation := req.Operation().String()
	e.metrics.RecordOperation(ctx, operation, resp.Status)
	e.metrics.RecordDuration(ctx, operation, time.Since(start), resp.Status)

	return resp
}
