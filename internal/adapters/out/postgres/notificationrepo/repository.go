package notificationrepo

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const listOrdering = "created_at DESC, id DESC"

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository
// bound to the given connection or transaction.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add persists a new notification.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing notification.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves a user's notifications, newest first.
func (r *GormNotificationRepository) GetByUserID(
	ctx context.Context,
	userID kernel.UUID,
) ([]*notification.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()))
}

// GetUnreadByUserID retrieves a user's unread notifications, newest first.
func (r *GormNotificationRepository) GetUnreadByUserID(
	ctx context.Context,
	userID kernel.UUID,
) ([]*notification.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return r.list(r.db.WithContext(ctx).Where("user_id = ? AND read = false", userID.Bytes()))
}

// GetUnreadCountByUserID returns how many unread notifications a user has.
func (r *GormNotificationRepository) GetUnreadCountByUserID(ctx context.Context, userID kernel.UUID) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND read = false", userID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkAllAsRead flags every unread notification of a user as read in a
// single statement and returns how many rows were touched.
func (r *GormNotificationRepository) MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND read = false", userID.Bytes()).
		Updates(map[string]any{"read": true, "read_at": now})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// PurgeReadBefore deletes read notifications created before the cutoff and
// returns how many rows were removed.
func (r *GormNotificationRepository) PurgeReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("read = true AND created_at < ?", cutoff).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormNotificationRepository) list(query *gorm.DB) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	if err := query.Order(listOrdering).Find(&dtos).Error; err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
