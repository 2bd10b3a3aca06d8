// Package delivery contains the Delivery record, created exactly once per
// order when delivery is confirmed.
package delivery

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"ordertrack/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrOrderIsNotInTransit is returned when attempting to create a delivery
	// for an order that is not in transit.
	ErrOrderIsNotInTransit = errors.New("delivery can only be created for an order in transit")
)

// Delivery records that an order was handed to the customer: which order,
// by whom, and when. A delivery is created once, while the order is InTransit,
// and is immutable thereafter. Uniqueness per order is checked before
// creation and additionally enforced by a unique index on the order id in the
// store; a race past the check surfaces as an errs.ConflictError from the
// repository.
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	orderNumber order.Number
	userID      kernel.UUID
	delivererID kernel.UUID
	deliveredAt time.Time

	isConstructed bool
}

// NewDelivery creates the delivery record for an in-transit order.
// The order number and owning user are denormalized from the order so the
// record stays readable without a join.
func NewDelivery(id kernel.UUID, o *order.Order, delivererID kernel.UUID, deliveredAt time.Time) (*Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if !o.CanBeDelivered() {
		return nil, ErrOrderIsNotInTransit
	}

	d := &Delivery{
		orderID:       o.ID(),
		orderNumber:   o.Number(),
		userID:        o.UserID(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDelivererID(delivererID),
		d.setDeliveredAt(deliveredAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	orderNumber order.Number,
	userID kernel.UUID,
	delivererID kernel.UUID,
	deliveredAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setOrderNumber(orderNumber),
		d.setUserID(userID),
		d.setDelivererID(delivererID),
		d.setDeliveredAt(deliveredAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was built through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the delivered order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// OrderNumber returns the denormalized order number.
func (d *Delivery) OrderNumber() order.Number {
	return d.orderNumber
}

// UserID returns the identifier of the user who owns the order.
func (d *Delivery) UserID() kernel.UUID {
	return d.userID
}

// DelivererID returns the identifier of the user who delivered the order.
func (d *Delivery) DelivererID() kernel.UUID {
	return d.delivererID
}

// DeliveredAt returns when the order was handed over.
func (d *Delivery) DeliveredAt() time.Time {
	return d.deliveredAt
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setOrderNumber(number order.Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	d.orderNumber = number
	return nil
}

func (d *Delivery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	d.userID = userID
	return nil
}

func (d *Delivery) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivererId", err)
	}
	d.delivererID = delivererID
	return nil
}

func (d *Delivery) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	d.deliveredAt = deliveredAt
	return nil
}
