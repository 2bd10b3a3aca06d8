package ports

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderFilter narrows order queries. Zero-valued fields are ignored.
// ActiveOnly is an explicit parameter rather than a silently-injected filter
// so callers always state whether tombstoned orders are wanted.
type OrderFilter struct {
	UserID     *kernel.UUID
	Status     *order.Status
	ActiveOnly bool
}

// OrderRepository defines the persistence contract for order aggregates.
// Listing methods return aggregates sorted by (createdAt desc, id desc), the
// order the cursor pagination engine expects.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including tombstoned ones.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUserID retrieves the orders owned by a user, newest first.
	// With activeOnly set, tombstoned orders are excluded.
	GetByUserID(ctx context.Context, userID kernel.UUID, activeOnly bool) ([]*order.Order, error)

	// GetByStatus retrieves the orders in a given status, newest first.
	GetByStatus(ctx context.Context, status order.Status, activeOnly bool) ([]*order.Order, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context, activeOnly bool) ([]*order.Order, error)

	// Count returns the number of orders matching the filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// GetDailyOrderCount returns how many orders were created on the given
	// calendar day (UTC). Used to derive the next daily sequence number for
	// order numbering.
	GetDailyOrderCount(ctx context.Context, date time.Time) (int64, error)
}
