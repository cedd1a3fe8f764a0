package formats

import (
	"context"
	"os"
	"strings"

	"campusops-service/pkg/logger"
	"campusops-service/pkg/schedule"
)

// PdfHandler handles PDF schedule documents
type PdfHandler struct {
	logger logger.Logger
}

// NewPdfHandler creates a new PDF document handler
func NewPdfHandler(logger logger.Logger) *PdfHandler {
	return &PdfHandler{
		logger: logger,
	}
}

// CanHandle determines if this handler can process the given format
func (h *PdfHandler) CanHandle(format string) bool {
	return strings.EqualFold(format, string(schedule.FormatPdf))
}

// Parse reads the document at path and parses it into a schedule
func (h *PdfHandler) Parse(ctx context.Context, path string, opts schedule.Options) *schedule.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error("Failed to read document", "path", path, "error", err)
		return &schedule.Result{Err: "failed to read document: " + err.Error()}
	}

	return schedule.Finalize(schedule.ParsePdf(data), opts)
}
