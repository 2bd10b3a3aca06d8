package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"
	"ordertrack/internal/pkg/errs"
)

// mutateNotification is the shared load -> mutate -> persist cycle for the
// read/unread toggles. A notification owned by a different user is reported
// as not found rather than forbidden, so ids cannot be probed across users.
func mutateNotification(
	ctx context.Context,
	uowFactory NotificationUoWFactory,
	notificationID kernel.UUID,
	userID kernel.UUID,
	mutate func(*notification.Notification) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()

	n, err := notificationRepo.Get(ctx, notificationID)
	if err != nil {
		return err
	}

	if !n.UserID().IsEqual(userID) {
		return errs.NewObjectNotFoundError("notificationId", notificationID.String())
	}

	if err = mutate(n); err != nil {
		return err
	}

	if err = notificationRepo.Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
