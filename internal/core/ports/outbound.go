package ports

import (
	"context"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

// TextExtractor extracts plain text from an uploaded document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// Stemmer reduces a lower-cased word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// EvaluationObserver receives pipeline events for metrics.
type EvaluationObserver interface {
	ObserveEvaluation(eval *domain.Evaluation)
	ObserveEvaluationError(err error)
	ObserveEmptyText(format domain.DocumentFormat)
}
