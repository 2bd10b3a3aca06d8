package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/notification"
)

// MarkNotificationReadCommandHandler flags a single notification as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking notifications read.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the notification, verifies ownership, marks it read and
// persists the change. Fails if the notification is already read.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateNotification(ctx, h.uowFactory, cmd.NotificationID(), cmd.UserID(),
		func(n *notification.Notification) error {
			return n.MarkAsRead()
		})
}
