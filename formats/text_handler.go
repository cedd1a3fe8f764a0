package formats

import (
	"context"
	"os"
	"strings"

	"campusops-service/pkg/logger"
	"campusops-service/pkg/schedule"
)

// TextHandler handles plain text schedule documents
type TextHandler struct {
	logger logger.Logger
}

// NewTextHandler creates a new plain text handler
func NewTextHandler(logger logger.Logger) *TextHandler {
	return &TextHandler{
		logger: logger,
	}
}

// CanHandle determines if this handler can process the given format
func (h *TextHandler) CanHandle(format string) bool {
	return strings.EqualFold(format, string(schedule.FormatText))
}

// Parse reads the document at path and parses it into a schedule
func (h *TextHandler) Parse(ctx context.Context, path string, opts schedule.Options) *schedule.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error("Failed to read document", "path", path, "error", err)
		return &schedule.Result{Err: "failed to read document: " + err.Error()}
	}

	return schedule.Finalize(schedule.ParseText(string(data)), opts)
}
