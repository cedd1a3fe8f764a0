package repository

import (
	"context"
)

// Notifier delivers a short message to a user. Delivery failures are
// reported to the caller but must never abort the operation that
// triggered the notification.
type Notifier interface {
	Notify(ctx context.Context, userID uint, subject, body string) error
}
