package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand requests that a user's notification be flagged as read.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification as read.
func NewMarkNotificationReadCommand(notificationID, userID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	if err := userID.Validate(); err != nil {
		return MarkNotificationReadCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return MarkNotificationReadCommand{
		notificationID: notificationID,
		userID:         userID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the identifier of the notification to mark.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// UserID returns the identifier of the user the notification must belong to.
func (c MarkNotificationReadCommand) UserID() kernel.UUID {
	return c.userID
}
