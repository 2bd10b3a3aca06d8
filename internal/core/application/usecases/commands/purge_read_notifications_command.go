package commands

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrPurgeReadNotificationsCommandIsNotConstructed = errors.New(
	"PurgeReadNotificationsCommand must be created via NewPurgeReadNotificationsCommand constructor",
)

// PurgeReadNotificationsCommand requests deletion of read notifications older
// than the retention window. Unread notifications are never purged.
type PurgeReadNotificationsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeReadNotificationsCommand creates a purge command with the given
// retention window.
func NewPurgeReadNotificationsCommand(retention time.Duration) (PurgeReadNotificationsCommand, error) {
	if retention <= 0 {
		return PurgeReadNotificationsCommand{}, errs.NewValueIsRequiredError("retention")
	}

	return PurgeReadNotificationsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReadNotificationsCommandIsNotConstructed)
}

// Retention returns how long read notifications are kept before purging.
func (c PurgeReadNotificationsCommand) Retention() time.Duration {
	return c.retention
}
