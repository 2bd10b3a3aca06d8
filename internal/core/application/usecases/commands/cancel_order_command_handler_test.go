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

func TestNewCancelOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	for _, from := range []order.Status{order.Pending, order.Confirmed} {
		aggregate := newTestOrder(t, from)
		cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
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

		h := commands.NewCancelOrderCommandHandler(factory, dispatcher)
		require.NoError(t, h.Handle(ctx, cmd), "from %s", from)
		assert.Equal(t, order.Cancelled, aggregate.Status())
	}
}

func TestCancelOrderCommandHandler_Handle_InTransit(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.InTransit)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
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

	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventDispatcher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot cancel an order that is already in transit.")
	assert.Equal(t, order.InTransit, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.Delivered)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
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

	h := commands.NewCancelOrderCommandHandler(factory, new(MockEventDispatcher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot cancel an order that is already delivered.")
	assert.Equal(t, order.Delivered, aggregate.Status())
}
