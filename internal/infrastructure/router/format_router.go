package router

import (
	"campusops-service/internal/usecase"
	"campusops-service/pkg/logger"
)

// FormatRouter routes import jobs to handlers based on document format
type FormatRouter struct {
	handlers []usecase.FormatHandler
	logger   logger.Logger
}

// NewFormatRouter creates a new format router
func NewFormatRouter(logger logger.Logger) *FormatRouter {
	return &FormatRouter{
		handlers: make([]usecase.FormatHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler for a document format
func (r *FormatRouter) Register(handler usecase.FormatHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered format handler", "handler", handler)
}

// GetHandler returns the appropriate handler for a given format
func (r *FormatRouter) GetHandler(format string) usecase.FormatHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(format) {
			return handler
		}
	}
	return nil
}
