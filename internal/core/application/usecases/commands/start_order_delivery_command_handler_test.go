package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewStartOrderDeliveryCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartOrderDeliveryCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewStartOrderDeliveryCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestStartOrderDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.Confirmed)
	cmd, err := commands.NewStartOrderDeliveryCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	dispatcher := new(MockEventDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Dispatch", ctx, mock.Anything).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderDeliveryCommandHandler(factory, dispatcher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.InTransit, aggregate.Status())
	require.Len(t, dispatcher.Events, 1)
	changed, ok := dispatcher.Events[0].(order.StatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, order.Confirmed, changed.OldStatus)
	assert.Equal(t, order.InTransit, changed.NewStatus)
}

func TestStartOrderDeliveryCommandHandler_Handle_FromPending(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.Pending)
	cmd, err := commands.NewStartOrderDeliveryCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartOrderDeliveryCommandHandler(factory, new(MockEventDispatcher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
