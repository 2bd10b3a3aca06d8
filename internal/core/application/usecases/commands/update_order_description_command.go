package commands

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrUpdateOrderDescriptionCommandIsNotConstructed = errors.New(
	"UpdateOrderDescriptionCommand must be created via NewUpdateOrderDescriptionCommand constructor",
)

// UpdateOrderDescriptionCommand requests a description change for a pending order.
type UpdateOrderDescriptionCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewUpdateOrderDescriptionCommand creates a command to change an order's description.
func NewUpdateOrderDescriptionCommand(orderID kernel.UUID, description string) (UpdateOrderDescriptionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderDescriptionCommand{}, err
	}

	if description == "" {
		return UpdateOrderDescriptionCommand{}, errs.NewValueIsRequiredError("description")
	}

	if len(description) > order.MaxDescriptionLength {
		return UpdateOrderDescriptionCommand{}, errs.NewValueIsOutOfRangeError(
			"description length", len(description), 1, order.MaxDescriptionLength,
		)
	}

	return UpdateOrderDescriptionCommand{
		orderID:     orderID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDescriptionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDescriptionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderDescriptionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Description returns the new description.
func (c UpdateOrderDescriptionCommand) Description() string {
	return c.description
}
