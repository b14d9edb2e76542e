package extractor

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
	"github.com/kirillkom/placement-predictor/internal/core/ports"
)

// Selector routes a document to the extractor registered for its format and
// normalises the result.
type Selector struct {
	byFormat map[domain.DocumentFormat]ports.TextExtractor
}

func NewSelector(pdf, docx ports.TextExtractor) *Selector {
	return &Selector{
		byFormat: map[domain.DocumentFormat]ports.TextExtractor{
			domain.FormatPDF:  pdf,
			domain.FormatDOCX: docx,
		},
	}
}

func (s *Selector) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	if doc == nil {
		return "", domain.WrapError(domain.ErrInvalidInput, "extract", fmt.Errorf("nil document"))
	}
	ex, ok := s.byFormat[doc.Format]
	if !ok || ex == nil {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract", fmt.Errorf("format %q", doc.Format))
	}
	text, err := ex.Extract(ctx, doc)
	if err != nil {
		return "", err
	}
	return NormalizeText(text), nil
}

// NormalizeText applies NFKC so ligatures and full-width forms compare equal
// to their plain spelling, and drops control runes other than newline and tab.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	normed := norm.NFKC.String(text)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
}
