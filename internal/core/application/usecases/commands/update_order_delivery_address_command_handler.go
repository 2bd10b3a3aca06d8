package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// UpdateOrderDeliveryAddressCommandHandler changes the delivery address of a
// pending order. The address is resolved from the postal-code service before
// the transaction opens, so a resolver failure never holds a transaction.
type UpdateOrderDeliveryAddressCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   ports.AddressResolver
	dispatcher EventDispatcher
}

// NewUpdateOrderDeliveryAddressCommandHandler creates a handler for delivery address updates.
func NewUpdateOrderDeliveryAddressCommandHandler(
	uowFactory OrderUoWFactory,
	resolver ports.AddressResolver,
	dispatcher EventDispatcher,
) UpdateOrderDeliveryAddressCommandHandler {
	return UpdateOrderDeliveryAddressCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// Handle resolves the new address, loads the order and persists the change.
// Address updates record no domain events, so the dispatch is a no-op.
func (h *UpdateOrderDeliveryAddressCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderDeliveryAddressCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	resolved, err := h.resolver.Resolve(ctx, cmd.CEP())
	if err != nil {
		return err
	}

	address, err := order.NewAddress(
		cmd.CEP(),
		resolved.Street,
		cmd.AddressNumber(),
		resolved.Neighborhood,
		resolved.City,
		resolved.State,
		cmd.Complement(),
	)
	if err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.dispatcher, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateDeliveryAddress(address)
	})
}
