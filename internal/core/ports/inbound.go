package ports

import (
	"context"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

// PlacementEvaluator is the inbound contract for a single resume evaluation.
type PlacementEvaluator interface {
	Evaluate(ctx context.Context, req domain.EvaluationRequest) (*domain.Evaluation, error)
}
