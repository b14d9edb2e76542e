package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

// EvaluationMetrics implements ports.EvaluationObserver.
type EvaluationMetrics struct {
	service string

	evaluationsTotal *prometheus.CounterVec
	atsScore         *prometheus.HistogramVec
	gradeSource      *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	emptyTextTotal   *prometheus.CounterVec
}

func NewEvaluationMetrics(service string, registerer prometheus.Registerer) *EvaluationMetrics {
	evaluationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placement",
			Subsystem: "evaluation",
			Name:      "evaluations_total",
			Help:      "Completed placement evaluations by outcome.",
		},
		[]string{"service", "outcome", "resume"},
	)
	atsScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "placement",
			Subsystem: "evaluation",
			Name:      "ats_score",
			Help:      "Distribution of ATS scores used for prediction.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 75, 80, 90, 100},
		},
		[]string{"service", "source"},
	)
	gradeSource := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placement",
			Subsystem: "evaluation",
			Name:      "grade_source_total",
			Help:      "Where the CGPA used for prediction came from.",
		},
		[]string{"service", "source"},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placement",
			Subsystem: "evaluation",
			Name:      "errors_total",
			Help:      "Rejected or failed evaluations by error kind.",
		},
		[]string{"service", "kind"},
	)
	emptyTextTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placement",
			Subsystem: "extraction",
			Name:      "empty_text_total",
			Help:      "Uploaded documents that produced no text.",
		},
		[]string{"service", "format"},
	)

	registerer.MustRegister(evaluationsTotal, atsScore, gradeSource, errorsTotal, emptyTextTotal)

	return &EvaluationMetrics{
		service:          service,
		evaluationsTotal: evaluationsTotal,
		atsScore:         atsScore,
		gradeSource:      gradeSource,
		errorsTotal:      errorsTotal,
		emptyTextTotal:   emptyTextTotal,
	}
}

func (m *EvaluationMetrics) ObserveEvaluation(eval *domain.Evaluation) {
	if eval == nil {
		return
	}
	resume := "no"
	if eval.ResumeUploaded {
		resume = "yes"
	}
	m.evaluationsTotal.WithLabelValues(m.service, string(eval.Prediction.Outcome), resume).Inc()
	m.atsScore.WithLabelValues(m.service, string(eval.ScoreSource)).Observe(eval.ATSScore)
	m.gradeSource.WithLabelValues(m.service, string(eval.GradeSource)).Inc()
}

func (m *EvaluationMetrics) ObserveEvaluationError(err error) {
	if err == nil {
		return
	}
	m.errorsTotal.WithLabelValues(m.service, domain.ErrorCode(err)).Inc()
}

func (m *EvaluationMetrics) ObserveEmptyText(format domain.DocumentFormat) {
	if format == "" {
		format = "unknown"
	}
	m.emptyTextTotal.WithLabelValues(m.service, string(format)).Inc()
}
