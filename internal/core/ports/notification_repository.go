package ports

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists changes to an existing notification (read state).
	Update(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetByUserID retrieves a user's notifications, newest first.
	GetByUserID(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// GetUnreadByUserID retrieves a user's unread notifications, newest first.
	GetUnreadByUserID(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// GetUnreadCountByUserID returns how many unread notifications a user has.
	GetUnreadCountByUserID(ctx context.Context, userID kernel.UUID) (int64, error)

	// MarkAllAsRead flags every unread notification of a user as read.
	// Returns the number of notifications affected.
	MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error)

	// PurgeReadBefore deletes read notifications created before the cutoff.
	// Used by the scheduled cleanup job.
	PurgeReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
