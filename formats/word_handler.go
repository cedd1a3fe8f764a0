package formats

import (
	"context"
	"os"
	"strings"

	"campusops-service/pkg/logger"
	"campusops-service/pkg/schedule"
)

// WordHandler handles Word schedule documents
type WordHandler struct {
	logger logger.Logger
}

// NewWordHandler creates a new Word document handler
func NewWordHandler(logger logger.Logger) *WordHandler {
	return &WordHandler{
		logger: logger,
	}
}

// CanHandle determines if this handler can process the given format
func (h *WordHandler) CanHandle(format string) bool {
	return strings.EqualFold(format, string(schedule.FormatDocx))
}

// Parse reads the document at path and parses it into a schedule
func (h *WordHandler) Parse(ctx context.Context, path string, opts schedule.Options) *schedule.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error("Failed to read document", "path", path, "error", err)
		return &schedule.Result{Err: "failed to read document: " + err.Error()}
	}

	res := schedule.Finalize(schedule.ParseDocx(data, opts.IgnoreImages), opts)
	if !res.Success && res.Details != nil && res.Details.ContainsImages {
		h.logger.Warn("Document contains images instead of text tables",
			"path", path,
			"imageCount", res.Details.ImageCount)
	}
	return res
}
