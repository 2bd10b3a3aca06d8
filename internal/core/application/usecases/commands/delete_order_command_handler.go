package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler soft-deletes an order.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewDeleteOrderCommandHandler creates a handler for order soft deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, marks it deleted and persists the change.
// Soft deletion records no domain events, so the dispatch is a no-op.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkDeleted()
	})
}
