package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/core/ports"
)

const minATSScore = 0.0

type EvaluatePlacementUseCase struct {
	extractor ports.TextExtractor
	scorer    *CategoryScorer
	observer  ports.EvaluationObserver
}

func NewEvaluatePlacementUseCase(
	extractor ports.TextExtractor,
	scorer *CategoryScorer,
	observer ports.EvaluationObserver,
) *EvaluatePlacementUseCase {
	return &EvaluatePlacementUseCase{
		extractor: extractor,
		scorer:    scorer,
		observer:  observer,
	}
}

func (uc *EvaluatePlacementUseCase) Evaluate(ctx context.Context, req domain.EvaluationRequest) (*domain.Evaluation, error) {
	var (
		eval *domain.Evaluation
		err  error
	)
	if req.HasResume() {
		eval, err = uc.evaluateResume(ctx, req)
	} else {
		eval, err = uc.evaluateManual(req)
	}
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	eval.Prediction = Classify(eval.Grade, eval.ATSScore)
	if eval.Feedback == nil {
		eval.Feedback = []string{}
	}
	uc.observe(eval)

	slog.InfoContext(ctx, "placement_evaluated",
		"resume_uploaded", eval.ResumeUploaded,
		"cgpa", eval.Grade,
		"cgpa_source", eval.GradeSource,
		"ats_score", eval.ATSScore,
		"outcome", eval.Prediction.Outcome,
		"feedback_items", len(eval.Feedback),
	)
	return eval, nil
}

func (uc *EvaluatePlacementUseCase) evaluateResume(ctx context.Context, req domain.EvaluationRequest) (*domain.Evaluation, error) {
	doc, err := uc.loadDocument(req)
	if err != nil {
		return nil, err
	}

	text, err := uc.extractText(ctx, doc)
	if err != nil {
		return nil, err
	}

	report := uc.scorer.Score(text)
	eval := &domain.Evaluation{
		ResumeUploaded: true,
		ATSScore:       report.Composite,
		ScoreSource:    domain.SourceResume,
		Feedback:       report.Feedback,
		Categories:     report.Categories,
	}

	if grade, ok := ExtractGrade(text); ok {
		eval.Grade = grade
		eval.GradeSource = domain.SourceExtracted
		return eval, nil
	}

	grade, err := uc.manualGrade(req.GradeInput)
	if err != nil {
		return nil, err
	}
	eval.Grade = grade
	eval.GradeSource = domain.SourceManual
	return eval, nil
}

func (uc *EvaluatePlacementUseCase) evaluateManual(req domain.EvaluationRequest) (*domain.Evaluation, error) {
	gradeInput := strings.TrimSpace(req.GradeInput)
	scoreInput := strings.TrimSpace(req.ScoreInput)
	if gradeInput == "" || scoreInput == "" {
		return nil, domain.WrapError(domain.ErrMissingManualInputs, "evaluate manual", errors.New("cgpa and ats score are required"))
	}

	grade, gradeErr := parseBounded(gradeInput, MinGrade, MaxGrade)
	score, scoreErr := parseBounded(scoreInput, minATSScore, maxATSScore)
	if gradeErr != nil || scoreErr != nil {
		return nil, domain.WrapError(domain.ErrMalformedManualInputs, "evaluate manual", errors.Join(gradeErr, scoreErr))
	}

	return &domain.Evaluation{
		Grade:       grade,
		GradeSource: domain.SourceManual,
		ATSScore:    score,
		ScoreSource: domain.SourceManual,
		Feedback:    []string{},
	}, nil
}

func (uc *EvaluatePlacementUseCase) loadDocument(req domain.EvaluationRequest) (*domain.Document, error) {
	format, ok := domain.FormatFromFilename(req.Filename)
	if !ok {
		return nil, domain.WrapError(domain.ErrUnsupportedFormat, "load document", fmt.Errorf("filename %q", req.Filename))
	}

	raw, err := io.ReadAll(req.Content)
	if err != nil {
		return nil, fmt.Errorf("read uploaded document: %w", err)
	}

	return &domain.Document{
		Filename: req.Filename,
		Format:   format,
		Content:  raw,
	}, nil
}

func (uc *EvaluatePlacementUseCase) extractText(ctx context.Context, doc *domain.Document) (string, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		slog.WarnContext(ctx, "empty_extracted_text", "filename", doc.Filename, "format", doc.Format)
		if uc.observer != nil {
			uc.observer.ObserveEmptyText(doc.Format)
		}
	}
	return text, nil
}

func (uc *EvaluatePlacementUseCase) manualGrade(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, domain.WrapError(domain.ErrMissingGrade, "resolve grade", errors.New("grade not found in resume and not provided"))
	}
	grade, err := parseBounded(input, MinGrade, MaxGrade)
	if err != nil {
		return 0, domain.WrapError(domain.ErrMalformedGrade, "resolve grade", err)
	}
	return grade, nil
}

func (uc *EvaluatePlacementUseCase) observe(eval *domain.Evaluation) {
	if uc.observer != nil {
		uc.observer.ObserveEvaluation(eval)
	}
}

func (uc *EvaluatePlacementUseCase) observeError(err error) {
	if uc.observer != nil {
		uc.observer.ObserveEvaluationError(err)
	}
}

func parseBounded(input string, lo, hi float64) (float64, error) {
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", input, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("parse %q: not a finite number", input)
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("value %v outside [%v, %v]", value, lo, hi)
	}
	return value, nil
}
