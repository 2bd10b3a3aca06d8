package order

import (
	"errors"
	"fmt"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength bounds the free-text order description.
const MaxDescriptionLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCancelOrderInTransit is the exact user-facing failure for cancelling an
	// order that already left for delivery.
	ErrCancelOrderInTransit = errors.New("Cannot cancel an order that is already in transit.")

	// ErrCancelOrderDelivered is the exact user-facing failure for cancelling an
	// order that was already delivered.
	ErrCancelOrderDelivered = errors.New("Cannot cancel an order that is already delivered.")

	// ErrOrderIsNotPending guards description and address updates, which are
	// only allowed before the order is confirmed.
	ErrOrderIsNotPending = errors.New("order can only be changed while it is pending")

	// ErrOrderAlreadyDeleted is returned when soft-deleting twice.
	ErrOrderAlreadyDeleted = errors.New("order is already deleted")
)

// Order is the aggregate root for the order lifecycle. It owns the status
// state machine, validates every attribute, and records domain events as a
// side effect of mutation.
//
// Invariants:
//   - monetary value is strictly positive
//   - description is non-empty and at most MaxDescriptionLength characters
//   - status only changes through the allowed-transition table in status.go
//   - the order number is immutable after construction
//   - orders are never hard-deleted; MarkDeleted sets a tombstone flag
//
// The events buffer is owned by the aggregate until a command handler drains
// it after persistence; it is excluded from the stored representation.
type Order struct {
	id          kernel.UUID
	number      Number
	description string
	value       decimal.Decimal
	address     Address
	status      Status
	userID      kernel.UUID
	createdAt   time.Time
	updatedAt   time.Time
	deleted     bool

	events        []DomainEvent
	isConstructed bool
}

// NewOrder creates a new Order in Pending status and records a CreatedEvent.
// Every parameter is validated; on failure the errors for all violated fields
// are joined so callers see the complete list at once.
func NewOrder(
	id kernel.UUID,
	number Number,
	description string,
	value decimal.Decimal,
	address Address,
	userID kernel.UUID,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setDescription(description),
		order.setValue(value),
		order.setAddress(address),
		order.setUserID(userID),
	); err != nil {
		return nil, err
	}

	order.record(newCreatedEvent(order))
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// It runs the same field validation as NewOrder but accepts any valid status,
// keeps the stored timestamps and tombstone flag, and records no events.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	description string,
	value decimal.Decimal,
	address Address,
	status Status,
	userID kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	deleted bool,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deleted:       deleted,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setDescription(description),
		order.setValue(value),
		order.setAddress(address),
		order.setUserID(userID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the immutable order number.
func (o *Order) Number() Number {
	return o.number
}

// Description returns the order description.
func (o *Order) Description() string {
	return o.description
}

// Value returns the monetary value of the order.
func (o *Order) Value() decimal.Decimal {
	return o.value
}

// DeliveryAddress returns the current delivery address.
func (o *Order) DeliveryAddress() Address {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsDeleted reports whether the soft-delete tombstone is set.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// UpdateStatus transitions the order to newStatus according to the allowed
// transition table, stamps updatedAt and records a StatusChangedEvent.
//
// Fails with ErrStatusUnchanged when newStatus equals the current status and
// with a "cannot transition from X to Y" error for disallowed transitions;
// the status is left unchanged on any failure.
func (o *Order) UpdateStatus(newStatus Status) error {
	oldStatus := o.status

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	o.record(newStatusChangedEvent(o, oldStatus, next))
	return nil
}

// Confirm moves a Pending order to Confirmed.
func (o *Order) Confirm() error {
	return o.UpdateStatus(Confirmed)
}

// StartDelivery moves a Confirmed order to InTransit.
func (o *Order) StartDelivery() error {
	return o.UpdateStatus(InTransit)
}

// Cancel moves the order to Cancelled.
//
// Orders that are already in transit or delivered report their own specific
// failures before the generic transition table is consulted; the table would
// reject those transitions anyway, but the explicit guards keep the exact
// user-facing messages.
func (o *Order) Cancel() error {
	switch o.status {
	case InTransit:
		return ErrCancelOrderInTransit
	case Delivered:
		return ErrCancelOrderDelivered
	}

	return o.UpdateStatus(Cancelled)
}

// CanBeDelivered reports whether a delivery may be confirmed for this order.
// Only orders in transit can be delivered.
func (o *Order) CanBeDelivered() bool {
	return o.status == InTransit
}

// MarkDelivered transitions an InTransit order to Delivered and records a
// DeliveredEvent carrying the delivery identity and timestamp. The generic
// StatusChangedEvent is not recorded for this transition; delivery
// confirmation is its own event type.
func (o *Order) MarkDelivered(deliveryID kernel.UUID, deliveredAt time.Time) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	o.record(newDeliveredEvent(o, deliveryID, deliveredAt))
	return nil
}

// UpdateDescription replaces the description. Permitted only while Pending.
func (o *Order) UpdateDescription(description string) error {
	if o.status != Pending {
		return ErrOrderIsNotPending
	}

	if err := o.setDescription(description); err != nil {
		return err
	}

	o.touch()
	return nil
}

// UpdateDeliveryAddress replaces the delivery address. Permitted only while Pending.
func (o *Order) UpdateDeliveryAddress(address Address) error {
	if o.status != Pending {
		return ErrOrderIsNotPending
	}

	if err := o.setAddress(address); err != nil {
		return err
	}

	o.touch()
	return nil
}

// MarkDeleted sets the soft-delete tombstone. The row stays in the store and
// is filtered out of listings by the repository's activeOnly parameter.
func (o *Order) MarkDeleted() error {
	if o.deleted {
		return ErrOrderAlreadyDeleted
	}

	o.deleted = true
	o.touch()
	return nil
}

// DomainEvents returns a copy of the recorded, not yet drained events in the
// order they were recorded.
func (o *Order) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents empties the event buffer. Command handlers call this after
// draining so an aggregate reused within one command does not publish twice.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(event DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 1, MaxDescriptionLength)
	}
	o.description = description
	return nil
}

func (o *Order) setValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is not greater than 0", value))
	}
	o.value = value
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
