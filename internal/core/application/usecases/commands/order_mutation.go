package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// mutateOrder is the shared load -> mutate -> persist -> dispatch cycle used
// by every order-only command handler. The mutation runs in memory on the
// loaded aggregate; events recorded by it are drained and dispatched only
// after the transaction commits, so a handler failure in the notification
// pipeline can never roll back the order change.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	dispatcher EventDispatcher,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	events := aggregate.DomainEvents()
	aggregate.ClearDomainEvents()
	dispatcher.Dispatch(ctx, events)

	return nil
}
