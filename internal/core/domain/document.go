package domain

import (
	"path/filepath"
	"strings"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// FormatFromFilename resolves the extraction path from the uploaded file name.
func FormatFromFilename(filename string) (DocumentFormat, bool) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(filename))) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	default:
		return "", false
	}
}

type Document struct {
	Filename string         `json:"filename"`
	Format   DocumentFormat `json:"format"`
	Content  []byte         `json:"-"`
}
