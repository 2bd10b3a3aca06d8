package deliveryrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
// The connection must be opened with TranslateError enabled so a unique
// index violation surfaces as gorm.ErrDuplicatedKey.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository bound to
// the given connection or transaction.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add persists a new delivery record. A second delivery for the same order
// loses the race at the unique index and comes back as errs.ConflictError.
func (r *GormDeliveryRepository) Add(ctx context.Context, record *delivery.Delivery) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("delivery for order", record.OrderID().String(), err)
		}
		return err
	}

	return nil
}

// GetByOrderID retrieves the delivery for an order.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
