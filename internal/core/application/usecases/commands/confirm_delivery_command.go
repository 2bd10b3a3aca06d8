package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand requests delivery confirmation for an in-transit
// order: the order moves to Delivered and a delivery record is created.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	delivererID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery of an order.
func NewConfirmDeliveryCommand(orderID, delivererID kernel.UUID) (ConfirmDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	if err := delivererID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("delivererId", err)
	}

	return ConfirmDeliveryCommand{
		orderID:     orderID,
		delivererID: delivererID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DelivererID returns the identifier of the person who completed the delivery.
func (c ConfirmDeliveryCommand) DelivererID() kernel.UUID {
	return c.delivererID
}
