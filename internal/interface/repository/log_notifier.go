package repository

import (
	"context"

	"campusops-service/internal/domain/repository"
	"campusops-service/pkg/logger"
)

// LogNotifier implements the Notifier interface by writing the message
// to the service log. It stands in for a real delivery channel.
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a new log-backed notifier
func NewLogNotifier(logger logger.Logger) repository.Notifier {
	return &LogNotifier{
		logger: logger,
	}
}

// Notify logs the notification
func (n *LogNotifier) Notify(ctx context.Context, userID uint, subject, body string) error {
	n.logger.Info("Notification",
		"userID", userID,
		"subject", subject,
		"body", body)
	return nil
}
