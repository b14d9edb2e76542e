package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/kirillkom/placement-predictor/internal/config"
	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/core/ports"
	"github.com/kirillkom/placement-predictor/internal/core/usecase"
	"github.com/kirillkom/placement-predictor/internal/infrastructure/extractor"
	"github.com/kirillkom/placement-predictor/internal/infrastructure/extractor/docx"
	"github.com/kirillkom/placement-predictor/internal/infrastructure/extractor/pdf"
	"github.com/kirillkom/placement-predictor/internal/infrastructure/stemming/porter"
	"github.com/kirillkom/placement-predictor/internal/observability/metrics"
)

const serviceName = "placement-api"

type App struct {
	Config config.Config

	Evaluator ports.PlacementEvaluator
	Scorer    *usecase.CategoryScorer
	// Metrics is nil when METRICS_ENABLED is false.
	Metrics *metrics.HTTPServerMetrics
}

func New(cfg config.Config) (*App, error) {
	scoring, err := config.LoadScoring(cfg.ScoringConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load scoring config: %w", err)
	}
	tunables := usecase.DefaultScoringTunables()
	if scoring.CalibrationBoost != nil {
		tunables.CalibrationBoost = *scoring.CalibrationBoost
	}
	if scoring.FeedbackThreshold != nil {
		tunables.FeedbackThreshold = *scoring.FeedbackThreshold
	}
	if scoring.PhraseMatching != nil {
		tunables.PhraseMatching = *scoring.PhraseMatching
	}

	scorer := usecase.NewCategoryScorer(porter.New(), domain.DefaultKeywordCategories(), tunables)
	textExtractor := extractor.NewSelector(pdf.NewExtractor(), docx.NewExtractor())

	var (
		httpMetrics *metrics.HTTPServerMetrics
		observer    ports.EvaluationObserver
	)
	if cfg.MetricsEnabled {
		httpMetrics = metrics.NewHTTPServerMetrics(serviceName)
		observer = httpMetrics
	}

	evaluator := usecase.NewEvaluatePlacementUseCase(textExtractor, scorer, observer)

	slog.Info("bootstrap_ready",
		"calibration_boost", scorer.Tunables().CalibrationBoost,
		"feedback_threshold", scorer.Tunables().FeedbackThreshold,
		"phrase_matching", scorer.Tunables().PhraseMatching,
		"metrics_enabled", cfg.MetricsEnabled,
	)

	return &App{
		Config:    cfg,
		Evaluator: evaluator,
		Scorer:    scorer,
		Metrics:   httpMetrics,
	}, nil
}
