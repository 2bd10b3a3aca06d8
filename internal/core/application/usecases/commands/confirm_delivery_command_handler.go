package commands

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler completes a delivery: moves the order to
// Delivered and records the delivery in the same transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
	dispatcher EventDispatcher
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
	dispatcher EventDispatcher,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the delivery confirmation command.
//
// An order can only be delivered once. The handler checks for an existing
// delivery record before constructing a new one; that check-then-act is not
// atomic with the insert, so the store's unique index on order id is the
// real guarantee and a race surfaces as errs.ConflictError from Add.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	existing, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewConflictError("delivery for order", cmd.OrderID().String())
	}

	deliveredAt := time.Now().UTC()

	record, err := delivery.NewDelivery(kernel.NewUUID(), aggregate, cmd.DelivererID(), deliveredAt)
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(record.ID(), deliveredAt); err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, record); err != nil {
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
	h.dispatcher.Dispatch(ctx, events)

	return nil
}
