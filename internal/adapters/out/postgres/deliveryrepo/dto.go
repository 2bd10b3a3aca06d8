// Package deliveryrepo persists delivery records. A delivery row is written
// once when delivery is confirmed and never mutated afterwards.
package deliveryrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for delivery records.
// The unique index on order id is the real one-delivery-per-order guarantee;
// the handler's existence check only catches the common case early.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderNumber string    `gorm:"type:varchar(18)"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	DelivererID uuid.UUID `gorm:"type:uuid"`
	DeliveredAt time.Time
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(record *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		OrderNumber: record.OrderNumber().String(),
		UserID:      record.UserID().Bytes(),
		DelivererID: record.DelivererID().Bytes(),
		DeliveredAt: record.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	delivererID, err := kernel.UUIDFromBytes(dto.DelivererID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, number, userID, delivererID, dto.DeliveredAt)
}
