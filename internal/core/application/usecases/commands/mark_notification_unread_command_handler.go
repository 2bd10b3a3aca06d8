package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/notification"
)

// MarkNotificationUnreadCommandHandler flags a single notification as unread again.
type MarkNotificationUnreadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationUnreadCommandHandler creates a handler for marking notifications unread.
func NewMarkNotificationUnreadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationUnreadCommandHandler {
	return MarkNotificationUnreadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the notification, verifies ownership, marks it unread and
// persists the change. Fails if the notification is already unread.
func (h *MarkNotificationUnreadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationUnreadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateNotification(ctx, h.uowFactory, cmd.NotificationID(), cmd.UserID(),
		func(n *notification.Notification) error {
			return n.MarkAsUnread()
		})
}
