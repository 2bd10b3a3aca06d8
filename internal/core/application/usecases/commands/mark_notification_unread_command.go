package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrMarkNotificationUnreadCommandIsNotConstructed = errors.New(
	"MarkNotificationUnreadCommand must be created via NewMarkNotificationUnreadCommand constructor",
)

// MarkNotificationUnreadCommand requests that a user's notification be flagged as unread again.
type MarkNotificationUnreadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationUnreadCommand creates a command to mark a notification as unread.
func NewMarkNotificationUnreadCommand(notificationID, userID kernel.UUID) (MarkNotificationUnreadCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return MarkNotificationUnreadCommand{}, err
	}

	if err := userID.Validate(); err != nil {
		return MarkNotificationUnreadCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return MarkNotificationUnreadCommand{
		notificationID: notificationID,
		userID:         userID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationUnreadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationUnreadCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to mark.
func (c MarkNotificationUnreadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// UserID returns the identifier of the user the notification must belong to.
func (c MarkNotificationUnreadCommand) UserID() kernel.UUID {
	return c.userID
}
