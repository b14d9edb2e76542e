package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kirillkom/placement-predictor/internal/config"
	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/observability/metrics"
)

type evaluatorFake struct {
	err  error
	seen *seenRequest
}

type seenRequest struct {
	filename   string
	content    []byte
	gradeInput string
	scoreInput string
	hasResume  bool
}

func (f evaluatorFake) Evaluate(_ context.Context, req domain.EvaluationRequest) (*domain.Evaluation, error) {
	if f.seen != nil {
		f.seen.filename = req.Filename
		f.seen.gradeInput = req.GradeInput
		f.seen.scoreInput = req.ScoreInput
		f.seen.hasResume = req.HasResume()
		if req.Content != nil {
			f.seen.content, _ = io.ReadAll(req.Content)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Evaluation{
		ResumeUploaded: req.HasResume(),
		Grade:          9.1,
		GradeSource:    domain.SourceExtracted,
		ATSScore:       78.4,
		ScoreSource:    domain.SourceResume,
		Prediction: domain.Prediction{
			Outcome:     domain.OutcomeExcellent,
			Message:     "Excellent! You have a high chance of getting placed!",
			Competitive: true,
		},
		Feedback: []string{"Consider adding more education to your resume."},
	}, nil
}

func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("resume", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestCreateEvaluationPassesUploadToEvaluator(t *testing.T) {
	seen := &seenRequest{}
	handler := NewRouter(config.Config{MaxUploadBytes: 1 << 20}, evaluatorFake{seen: seen}, nil).Handler()

	body, contentType := multipartBody(t, "Resume.PDF", []byte("%PDF-1.4 fake"), map[string]string{"cgpa": "8.1"})
	req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	if !seen.hasResume || seen.filename != "Resume.PDF" {
		t.Fatalf("expected resume to reach evaluator, got %+v", seen)
	}
	if string(seen.content) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected upload content %q", seen.content)
	}
	if seen.gradeInput != "8.1" || seen.scoreInput != "" {
		t.Fatalf("unexpected manual inputs %+v", seen)
	}

	var got domain.Evaluation
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode evaluation: %v", err)
	}
	if got.Prediction.Outcome != domain.OutcomeExcellent || got.Grade != 9.1 || got.ATSScore != 78.4 {
		t.Fatalf("unexpected evaluation %+v", got)
	}
	if len(got.Feedback) != 1 {
		t.Fatalf("expected feedback to round-trip, got %v", got.Feedback)
	}
}

func TestCreateEvaluationWithoutResumeIsManual(t *testing.T) {
	seen := &seenRequest{}
	handler := NewRouter(config.Config{}, evaluatorFake{seen: seen}, nil).Handler()

	body, contentType := multipartBody(t, "", nil, map[string]string{"cgpa": "7.5", "ats_score": "65"})
	req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if seen.hasResume {
		t.Fatalf("expected manual request, got resume %q", seen.filename)
	}
	if seen.gradeInput != "7.5" || seen.scoreInput != "65" {
		t.Fatalf("unexpected manual inputs %+v", seen)
	}
}

func TestCreateEvaluationRejectsOversizedUpload(t *testing.T) {
	handler := NewRouter(config.Config{MaxUploadBytes: 64}, evaluatorFake{}, nil).Handler()

	body, contentType := multipartBody(t, "cv.docx", bytes.Repeat([]byte("x"), 4096), nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", res.Code)
	}
}

func TestIndexRejectsOversizedUpload(t *testing.T) {
	handler := NewRouter(config.Config{MaxUploadBytes: 64}, evaluatorFake{}, nil).Handler()

	body, contentType := multipartBody(t, "cv.pdf", bytes.Repeat([]byte("x"), 4096), nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "The uploaded file is too large") {
		t.Fatalf("expected size message in page, got:\n%s", res.Body.String())
	}
}

func TestIndexRendersFormAndResult(t *testing.T) {
	handler := NewRouter(config.Config{}, evaluatorFake{}, nil).Handler()

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `name="resume"`) {
		t.Fatalf("expected upload form, got:\n%s", res.Body.String())
	}

	body, contentType := multipartBody(t, "cv.pdf", []byte("x"), nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	page := res.Body.String()
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	for _, want := range []string{
		"Excellent! You have a high chance of getting placed!",
		"CGPA: 9.10 (extracted)",
		"ATS score: 78.40 (resume)",
		"Consider adding more education to your resume.",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in page:\n%s", want, page)
		}
	}
}

func TestMetricsRouteExposesRequestCounters(t *testing.T) {
	m := metrics.NewHTTPServerMetrics(serviceName)
	handler := NewRouter(config.Config{}, evaluatorFake{}, m).Handler()

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	want := `placement_http_requests_total{method="GET",path="/healthz",service="placement-api",status="200"} 1`
	if !strings.Contains(res.Body.String(), want) {
		t.Fatalf("expected %q in metrics output:\n%s", want, res.Body.String())
	}
}
