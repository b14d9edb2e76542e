package httpadapter

import (
	"net/http"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case domain.IsKind(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity
	case domain.IsUserInput(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newErrorResponse(err error) errorResponse {
	return errorResponse{
		Error: domain.UserMessage(err),
		Code:  domain.ErrorCode(err),
	}
}
