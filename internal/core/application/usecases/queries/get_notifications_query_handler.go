package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler reads a user's notifications straight from the
// database, bypassing the domain model.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification listing queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query and returns the user's notifications, newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			type,
			message,
			data,
			read,
			read_at,
			created_at
		FROM notifications
		WHERE user_id = ?
	`
	if query.UnreadOnly() {
		sql += ` AND read = false`
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationResponse, 0)

	for rows.Next() {
		var resp NotificationResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Type,
			&resp.Message,
			&resp.Data,
			&resp.Read,
			&resp.ReadAt,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
