package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// listOrdering keeps every listing in the order the cursor pagination
// engine expects.
const listOrdering = "created_at DESC, id DESC"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given connection or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
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

// Get retrieves an order by ID, tombstoned ones included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the orders owned by a user, newest first.
func (r *GormOrderRepository) GetByUserID(
	ctx context.Context,
	userID kernel.UUID,
	activeOnly bool,
) ([]*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes())
	return r.list(query, activeOnly)
}

// GetByStatus retrieves the orders in a given status, newest first.
func (r *GormOrderRepository) GetByStatus(
	ctx context.Context,
	status order.Status,
	activeOnly bool,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("status = ?", int(status))
	return r.list(query, activeOnly)
}

// GetAll retrieves all orders, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, activeOnly bool) ([]*order.Order, error) {
	return r.list(r.db.WithContext(ctx), activeOnly)
}

// Count returns the number of orders matching the filter.
func (r *GormOrderRepository) Count(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", filter.UserID.Bytes())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}
	if filter.ActiveOnly {
		query = query.Where("deleted = false")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// GetDailyOrderCount returns how many orders were created on the given
// calendar day (UTC).
func (r *GormOrderRepository) GetDailyOrderCount(ctx context.Context, date time.Time) (int64, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormOrderRepository) list(query *gorm.DB, activeOnly bool) ([]*order.Order, error) {
	if activeOnly {
		query = query.Where("deleted = false")
	}

	var dtos []OrderDTO
	if err := query.Order(listOrdering).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
