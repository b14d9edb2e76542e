package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnsupportedFormat     = errors.New("unsupported document format")
	ErrMissingGrade          = errors.New("missing grade")
	ErrMalformedGrade        = errors.New("malformed grade")
	ErrMissingManualInputs   = errors.New("missing manual inputs")
	ErrMalformedManualInputs = errors.New("malformed manual inputs")
	ErrExtractionFailed      = errors.New("text extraction failed")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// IsUserInput reports whether err is a fault in the caller's input rather
// than a system failure.
func IsUserInput(err error) bool {
	for _, kind := range userInputKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return errors.Is(err, ErrInvalidInput)
}

var userInputKinds = []error{
	ErrUnsupportedFormat,
	ErrMissingGrade,
	ErrMalformedGrade,
	ErrMissingManualInputs,
	ErrMalformedManualInputs,
}

// UserMessage returns the message shown to the person who submitted the
// request.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return "Invalid file format. Please upload PDF or DOCX files only."
	case errors.Is(err, ErrMissingGrade):
		return "Please enter your CGPA since it couldn't be extracted from the resume"
	case errors.Is(err, ErrMalformedGrade):
		return "Please enter a valid CGPA number"
	case errors.Is(err, ErrMissingManualInputs):
		return "Please fill in both CGPA and ATS score"
	case errors.Is(err, ErrMalformedManualInputs):
		return "Please enter valid numerical values for CGPA and ATS score"
	case errors.Is(err, ErrExtractionFailed):
		return "The uploaded document could not be read"
	case errors.Is(err, ErrInvalidInput):
		return "Invalid request"
	default:
		return "Internal error"
	}
}

// ErrorCode is a stable machine-readable name for the error kind.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrMissingGrade):
		return "missing_grade"
	case errors.Is(err, ErrMalformedGrade):
		return "malformed_grade"
	case errors.Is(err, ErrMissingManualInputs):
		return "missing_manual_inputs"
	case errors.Is(err, ErrMalformedManualInputs):
		return "malformed_manual_inputs"
	case errors.Is(err, ErrExtractionFailed):
		return "extraction_failed"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
