// Package notificationrepo persists user notifications produced by the
// event pipeline.
package notificationrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for notifications.
// The type is stored by name, not by enum ordinal, so rows stay readable
// and the raw-SQL notification queries can return it as-is.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Type      string    `gorm:"type:varchar(32)"`
	Message   string    `gorm:"type:varchar(500)"`
	Data      string    `gorm:"type:varchar(4000)"`
	Read      bool      `gorm:"index"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Type:      n.Kind().String(),
		Message:   n.Message(),
		Data:      n.Data(),
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	kind, err := notification.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		kind,
		dto.Message,
		dto.Data,
		dto.Read,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
