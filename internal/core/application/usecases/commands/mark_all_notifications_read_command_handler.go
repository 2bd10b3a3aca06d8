package commands

import (
	"context"
)

// MarkAllNotificationsReadCommandHandler flags every unread notification of a
// user as read. The sweep runs as a single store-side update, so notifications
// that are already read are simply not touched and no per-row idempotence
// failure applies.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkAllNotificationsReadCommandHandler creates a handler for the bulk read sweep.
func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks all unread notifications of the user as read and returns how
// many were affected.
func (h *MarkAllNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAllNotificationsReadCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	affected, err := uow.NotificationRepository().MarkAllAsRead(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
