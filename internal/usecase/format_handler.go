package usecase

import (
	"context"

	"campusops-service/pkg/schedule"
)

// FormatHandler defines the interface for per-format document handlers
type FormatHandler interface {
	// CanHandle determines if this handler can process the given format
	CanHandle(format string) bool

	// Parse reads the document at path and parses it into a schedule
	Parse(ctx context.Context, path string, opts schedule.Options) *schedule.Result
}

// FormatRouter routes import jobs to the appropriate handler based on
// their declared format
type FormatRouter interface {
	// Register registers a handler for a document format
	Register(handler FormatHandler)

	// GetHandler returns the appropriate handler for a given format
	GetHandler(format string) FormatHandler
}
