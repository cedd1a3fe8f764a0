package formats

import (
	"context"
	"os"
	"strings"

	"campusops-service/pkg/logger"
	"campusops-service/pkg/schedule"
)

// ExcelHandler handles modern and legacy Excel schedule workbooks
type ExcelHandler struct {
	logger logger.Logger
}

// NewExcelHandler creates a new Excel workbook handler
func NewExcelHandler(logger logger.Logger) *ExcelHandler {
	return &ExcelHandler{
		logger: logger,
	}
}

// CanHandle determines if this handler can process the given format
func (h *ExcelHandler) CanHandle(format string) bool {
	return strings.EqualFold(format, string(schedule.FormatXlsx)) ||
		strings.EqualFold(format, string(schedule.FormatXls))
}

// Parse reads the workbook at path and parses it into a schedule
func (h *ExcelHandler) Parse(ctx context.Context, path string, opts schedule.Options) *schedule.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error("Failed to read workbook", "path", path, "error", err)
		return &schedule.Result{Err: "failed to read workbook: " + err.Error()}
	}

	if strings.HasSuffix(strings.ToLower(path), ".xls") {
		return schedule.Finalize(schedule.ParseXls(data), opts)
	}
	return schedule.Finalize(schedule.ParseXlsx(data), opts)
}
