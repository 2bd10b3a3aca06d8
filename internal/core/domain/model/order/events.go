package order

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Event name constants, used as notification payload discriminators.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDelivered     = "order.delivered"
)

// DomainEvent is an immutable record of something that happened to an order.
// The set of implementations is closed: CreatedEvent, StatusChangedEvent and
// DeliveredEvent. Dispatch is done with a type switch, so no reflection is
// involved anywhere in the pipeline.
type DomainEvent interface {
	// EventName returns the stable event discriminator.
	EventName() string

	// OccurredAt returns when the mutation produced this event.
	OccurredAt() time.Time
}

// CreatedEvent is recorded when a new order enters the system in Pending status.
type CreatedEvent struct {
	OrderID     kernel.UUID
	OrderNumber Number
	UserID      kernel.UUID
	Value       decimal.Decimal

	occurredAt time.Time
}

func newCreatedEvent(o *Order) CreatedEvent {
	return CreatedEvent{
		OrderID:     o.id,
		OrderNumber: o.number,
		UserID:      o.userID,
		Value:       o.value,
		occurredAt:  time.Now().UTC(),
	}
}

// EventName returns EventOrderCreated.
func (e CreatedEvent) EventName() string {
	return EventOrderCreated
}

// OccurredAt returns when the order was created.
func (e CreatedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// StatusChangedEvent is recorded by every successful UpdateStatus call,
// carrying both sides of the transition.
type StatusChangedEvent struct {
	OrderID     kernel.UUID
	OrderNumber Number
	UserID      kernel.UUID
	OldStatus   Status
	NewStatus   Status

	occurredAt time.Time
}

func newStatusChangedEvent(o *Order, oldStatus, newStatus Status) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:     o.id,
		OrderNumber: o.number,
		UserID:      o.userID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		occurredAt:  time.Now().UTC(),
	}
}

// EventName returns EventOrderStatusChanged.
func (e StatusChangedEvent) EventName() string {
	return EventOrderStatusChanged
}

// OccurredAt returns when the status change happened.
func (e StatusChangedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// DeliveredEvent is recorded when a delivery is confirmed for the order.
// It replaces the generic StatusChangedEvent for the InTransit -> Delivered
// transition so each user-visible action maps to exactly one event.
type DeliveredEvent struct {
	OrderID     kernel.UUID
	OrderNumber Number
	UserID      kernel.UUID
	DeliveryID  kernel.UUID
	DeliveredAt time.Time

	occurredAt time.Time
}

func newDeliveredEvent(o *Order, deliveryID kernel.UUID, deliveredAt time.Time) DeliveredEvent {
	return DeliveredEvent{
		OrderID:     o.id,
		OrderNumber: o.number,
		UserID:      o.userID,
		DeliveryID:  deliveryID,
		DeliveredAt: deliveredAt,
		occurredAt:  time.Now().UTC(),
	}
}

// EventName returns EventOrderDelivered.
func (e DeliveredEvent) EventName() string {
	return EventOrderDelivered
}

// OccurredAt returns when the delivery confirmation happened.
func (e DeliveredEvent) OccurredAt() time.Time {
	return e.occurredAt
}
