package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
type DeliveryRepository interface {
	// Add persists a new delivery record. The store enforces a unique index
	// on the order id; a violation is returned as errs.ConflictError so a
	// check-then-act race surfaces the same way as the domain check.
	Add(ctx context.Context, record *delivery.Delivery) error

	// GetByOrderID retrieves the delivery for an order.
	// Returns errs.ObjectNotFoundError when no delivery exists yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
