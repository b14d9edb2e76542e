package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/kirillkom/placement-predictor/internal/config"
	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/core/ports"
	"github.com/kirillkom/placement-predictor/internal/observability/metrics"
)

const (
	serviceName     = "placement-api"
	resumeFormField = "resume"
	gradeFormField  = "cgpa"
	scoreFormField  = "ats_score"
)

var errUploadTooLarge = errors.New("upload too large")

type Router struct {
	cfg       config.Config
	evaluator ports.PlacementEvaluator
	metrics   *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	evaluator ports.PlacementEvaluator,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:       cfg,
		evaluator: evaluator,
		metrics:   m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/evaluations", rt.createEvaluation)
	mux.HandleFunc("/", rt.index)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, time.Duration(rt.cfg.APIBackpressureWaitMS)*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		renderPage(w, http.StatusOK, pageData{})
	case http.MethodPost:
		req, cleanup, err := rt.parseEvaluationForm(w, r)
		if err != nil {
			renderPage(w, formErrorStatus(err), pageData{Error: formErrorMessage(err)})
			return
		}
		defer cleanup()

		eval, err := rt.evaluator.Evaluate(r.Context(), req)
		if err != nil {
			rt.logEvaluationError(r, err)
			renderPage(w, mapErrorToHTTPStatus(err), pageData{Error: domain.UserMessage(err)})
			return
		}
		renderPage(w, http.StatusOK, pageData{Result: eval})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) createEvaluation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	req, cleanup, err := rt.parseEvaluationForm(w, r)
	if err != nil {
		writeJSON(w, formErrorStatus(err), errorResponse{Error: formErrorMessage(err), Code: "invalid_form"})
		return
	}
	defer cleanup()

	eval, err := rt.evaluator.Evaluate(r.Context(), req)
	if err != nil {
		rt.logEvaluationError(r, err)
		writeJSON(w, mapErrorToHTTPStatus(err), newErrorResponse(err))
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

// parseEvaluationForm accepts multipart or urlencoded bodies. A missing or
// unnamed resume part means the request is a manual-only evaluation.
func (rt *Router) parseEvaluationForm(w http.ResponseWriter, r *http.Request) (domain.EvaluationRequest, func(), error) {
	noop := func() {}
	if rt.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, rt.cfg.MaxUploadBytes)
	}

	if err := r.ParseMultipartForm(rt.maxMemory()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.EvaluationRequest{}, noop, errUploadTooLarge
		}
		return domain.EvaluationRequest{}, noop, err
	}

	req := domain.EvaluationRequest{
		GradeInput: r.FormValue(gradeFormField),
		ScoreInput: r.FormValue(scoreFormField),
	}

	file, header, err := r.FormFile(resumeFormField)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return req, noop, nil
	case err != nil:
		return domain.EvaluationRequest{}, noop, err
	}
	if header.Filename == "" {
		_ = file.Close()
		return req, noop, nil
	}

	req.Filename = header.Filename
	req.Content = file
	return req, closeFile(file), nil
}

func (rt *Router) maxMemory() int64 {
	if rt.cfg.MaxUploadBytes > 0 {
		return rt.cfg.MaxUploadBytes
	}
	return 32 << 20
}

func (rt *Router) logEvaluationError(r *http.Request, err error) {
	level := slog.LevelWarn
	if !domain.IsUserInput(err) {
		level = slog.LevelError
	}
	slog.Log(r.Context(), level, "evaluation_failed",
		"request_id", requestIDFromContext(r.Context()),
		"code", domain.ErrorCode(err),
		"error", err,
	)
}

func closeFile(f multipart.File) func() {
	return func() { _ = f.Close() }
}

func formErrorStatus(err error) int {
	if errors.Is(err, errUploadTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func formErrorMessage(err error) string {
	if errors.Is(err, errUploadTooLarge) {
		return "The uploaded file is too large"
	}
	return "Invalid form submission"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
