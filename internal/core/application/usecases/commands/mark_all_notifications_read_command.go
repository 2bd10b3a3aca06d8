package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand requests that every unread notification of a
// user be flagged as read in one sweep.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark all of a user's notifications read.
func NewMarkAllNotificationsReadCommand(userID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	if err := userID.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return MarkAllNotificationsReadCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose notifications are marked.
func (c MarkAllNotificationsReadCommand) UserID() kernel.UUID {
	return c.userID
}
