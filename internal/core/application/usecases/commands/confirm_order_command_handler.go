package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler moves an order from Pending to Confirmed.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, applies Confirm, persists the change and dispatches
// the recorded status-change event after commit.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(), func(o *order.Order) error {
		return o.Confirm()
	})
}
