package schedule

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// ParsePdf extracts the plain text of a PDF and runs it through the
// generic text pipeline. Extraction failures are fatal for the
// document; PDFs carry no recoverable structure beyond their text.
func ParsePdf(data []byte) *Result {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return failure(fmt.Sprintf("PDF processing failed: %v", err), nil)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return failure(fmt.Sprintf("PDF text extraction failed: %v", err), nil)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return failure(fmt.Sprintf("PDF text extraction failed: %v", err), nil)
	}

	return ParseText(string(text))
}
