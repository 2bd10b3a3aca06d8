package commands

import (
	"context"
	"time"
)

// PurgeReadNotificationsCommandHandler deletes read notifications whose
// creation time falls outside the retention window. Driven by the cleanup job.
type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewPurgeReadNotificationsCommandHandler creates a handler for the retention purge.
func NewPurgeReadNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle purges read notifications older than the retention window and
// returns how many rows were removed.
func (h *PurgeReadNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeReadNotificationsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.Retention())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.NotificationRepository().PurgeReadBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
