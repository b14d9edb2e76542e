package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kirillkom/placement-predictor/internal/core/domain"
)

const documentPart = "word/document.xml"

// Extractor reads the body paragraphs of a DOCX package. Unlike the PDF path
// every failure is returned to the caller.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(_ context.Context, doc *domain.Document) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(doc.Content), int64(len(doc.Content)))
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionFailed, "open docx", err)
	}

	part, err := openPart(zr, documentPart)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionFailed, "open docx", err)
	}
	defer part.Close()

	text, err := paragraphText(part)
	if err != nil {
		return "", domain.WrapError(domain.ErrExtractionFailed, "parse docx", err)
	}
	return text, nil
}

func openPart(zr *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range zr.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("missing part %s", name)
}

// paragraphText writes each body paragraph followed by a newline. Paragraphs
// nested in tables or text boxes are not part of the body sequence.
func paragraphText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		out     strings.Builder
		para    strings.Builder
		nested  int
		inPara  bool
		inText  bool
		sawBody bool
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "body":
				sawBody = true
			case "tbl", "txbxContent":
				nested++
			case "p":
				if nested == 0 {
					inPara = true
					para.Reset()
				}
			case "t":
				inText = inPara && nested == 0
			case "tab":
				if inPara && nested == 0 {
					para.WriteString("\t")
				}
			case "br", "cr":
				if inPara && nested == 0 {
					para.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl", "txbxContent":
				if nested > 0 {
					nested--
				}
			case "p":
				if inPara && nested == 0 {
					out.WriteString(para.String())
					out.WriteString("\n")
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	if !sawBody {
		return "", errors.New("document part has no body")
	}
	return out.String(), nil
}
