package notification

import (
	"context"

	"photostudio/models"
)

// Notifier announces new bookings and contact messages to the studio.
// Implementations must not block the submission path on delivery.
type Notifier interface {
	Notify(ctx context.Context, n models.StudioNotification) error
}

// NoopNotifier drops every notification.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, models.StudioNotification) error { return nil }
