package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// StartOrderDeliveryCommandHandler moves an order from Confirmed to InTransit.
type StartOrderDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

// NewStartOrderDeliveryCommandHandler creates a handler for putting orders in transit.
func NewStartOrderDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
) StartOrderDeliveryCommandHandler {
	return StartOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order, applies StartDelivery, persists the change and
// dispatches the recorded status-change event after commit.
func (h *StartOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd StartOrderDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(), func(o *order.Order) error {
		return o.StartDelivery()
	})
}
