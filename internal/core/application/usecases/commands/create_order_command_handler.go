package commands

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the delivery address from the postal-code service, derives the
// daily order number, persists the new aggregate and dispatches its recorded
// events after the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   ports.AddressResolver
	dispatcher EventDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	resolver ports.AddressResolver,
	dispatcher EventDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command.
//
// The order number is derived from the count of orders already created today
// (dailyCount + 1). There is no lock around the count, so two concurrent
// creations on the same day can produce the same number; that matches the
// source system and is deliberately not papered over here.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	today := time.Now().UTC()
	dailyCount, err := orderRepo.GetDailyOrderCount(ctx, today)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		order.GenerateNumber(today, dailyCount),
		cmd.Description(),
		cmd.Value(),
		address,
		cmd.UserID(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	events := aggregate.DomainEvents()
	aggregate.ClearDomainEvents()
	h.dispatcher.Dispatch(ctx, events)

	return nil
}
