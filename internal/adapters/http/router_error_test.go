package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kirillkom/placement-predictor/internal/config"
	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

func TestEvaluationErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "unsupported format",
			err:      domain.WrapError(domain.ErrUnsupportedFormat, "load document", errors.New("ext=.txt")),
			wantCode: http.StatusUnsupportedMediaType,
			wantKind: "unsupported_format",
		},
		{
			name:     "missing grade",
			err:      domain.WrapError(domain.ErrMissingGrade, "resolve grade", errors.New("empty")),
			wantCode: http.StatusBadRequest,
			wantKind: "missing_grade",
		},
		{
			name:     "malformed manual inputs",
			err:      domain.WrapError(domain.ErrMalformedManualInputs, "parse manual inputs", errors.New("abc")),
			wantCode: http.StatusBadRequest,
			wantKind: "malformed_manual_inputs",
		},
		{
			name:     "extraction failed",
			err:      domain.WrapError(domain.ErrExtractionFailed, "extract docx", errors.New("zip")),
			wantCode: http.StatusUnprocessableEntity,
			wantKind: "extraction_failed",
		},
		{
			name:     "internal",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantKind: "internal",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewRouter(config.Config{}, evaluatorFake{err: tc.err}, nil).Handler()

			form := url.Values{"cgpa": {"8"}, "ats_score": {"70"}}
			req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if res.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, res.Code)
			}
			var body errorResponse
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if body.Code != tc.wantKind {
				t.Fatalf("expected code %q, got %q", tc.wantKind, body.Code)
			}
			if body.Error != domain.UserMessage(tc.err) {
				t.Fatalf("unexpected error message %q", body.Error)
			}
		})
	}
}

func TestFormPageShowsUserMessageOnError(t *testing.T) {
	handler := NewRouter(config.Config{}, evaluatorFake{
		err: domain.WrapError(domain.ErrMissingManualInputs, "parse manual inputs", errors.New("empty")),
	}, nil).Handler()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "Please fill in both CGPA and ATS score") {
		t.Fatalf("expected user message in page, got:\n%s", res.Body.String())
	}
}

func TestEvaluationRejectsNonPost(t *testing.T) {
	handler := NewRouter(config.Config{}, evaluatorFake{}, nil).Handler()

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/evaluations", nil))
	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.Code)
	}
}

func TestUnknownPathReturns404(t *testing.T) {
	handler := NewRouter(config.Config{}, evaluatorFake{}, nil).Handler()

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestEvaluationCancelledContextIsInternal(t *testing.T) {
	handler := NewRouter(config.Config{}, evaluatorFake{err: context.Canceled}, nil).Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", strings.NewReader("cgpa=8&ats_score=70"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.Code)
	}
}
