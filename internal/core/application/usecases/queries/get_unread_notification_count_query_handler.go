package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnreadNotificationCountQueryHandler counts a user's unread notifications.
type GetUnreadNotificationCountQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadNotificationCountQueryHandler creates a handler for the unread counter query.
func NewGetUnreadNotificationCountQueryHandler(db *gorm.DB) GetUnreadNotificationCountQueryHandler {
	return GetUnreadNotificationCountQueryHandler{db: db}
}

// Handle executes the count query.
func (h GetUnreadNotificationCountQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadNotificationCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = ? AND read = false
	`, query.UserID().Bytes()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
