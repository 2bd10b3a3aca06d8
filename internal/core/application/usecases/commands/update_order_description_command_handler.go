package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// UpdateOrderDescriptionCommandHandler changes the description of a pending order.
type UpdateOrderDescriptionCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewUpdateOrderDescriptionCommandHandler creates a handler for description updates.
func NewUpdateOrderDescriptionCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
) UpdateOrderDescriptionCommandHandler {
	return UpdateOrderDescriptionCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, applies the new description and persists the change.
// Description updates record no domain events, so the dispatch is a no-op.
func (h *UpdateOrderDescriptionCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDescriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateDescription(cmd.Description())
	})
}
