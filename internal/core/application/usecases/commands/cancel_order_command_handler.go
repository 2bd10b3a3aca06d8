package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order that has not yet left the warehouse.
// Orders already in transit or delivered refuse cancellation with a dedicated
// message; the aggregate enforces that.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, applies Cancel, persists the change and dispatches
// the recorded status-change event after commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
}
