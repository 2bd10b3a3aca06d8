package commands_test

import (
	"errors"
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Box of books", decimal.NewFromFloat(149.90), "01310100", "1000", "")
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	resolver := new(MockAddressResolver)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	dispatcher := new(MockEventDispatcher)
	mock.InOrder(
		resolver.On("Resolve", ctx, "01310100").Return(testResolvedAddress(), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDailyOrderCount", ctx, mock.AnythingOfType("time.Time")).Return(int64(4), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Dispatch", ctx, mock.Anything).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, resolver, dispatcher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, dispatcher.Events, 1)
	created, ok := dispatcher.Events[0].(order.CreatedEvent)
	require.True(t, ok)
	assert.Equal(t, cmd.OrderID(), created.OrderID)
	assert.Equal(t, cmd.UserID(), created.UserID)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	resolver.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockAddressResolver), new(MockEventDispatcher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_ResolverError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	resolver := new(MockAddressResolver)
	resolver.On("Resolve", ctx, "01310100").
		Return(testResolvedAddress(), errors.New("cep lookup failed")).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, resolver, new(MockEventDispatcher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
	resolver.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	resolver := new(MockAddressResolver)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		resolver.On("Resolve", ctx, "01310100").Return(testResolvedAddress(), nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, resolver, new(MockEventDispatcher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	resolver := new(MockAddressResolver)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		resolver.On("Resolve", ctx, "01310100").Return(testResolvedAddress(), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDailyOrderCount", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, resolver, new(MockEventDispatcher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitErrorSkipsDispatch(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	resolver := new(MockAddressResolver)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	dispatcher := new(MockEventDispatcher)
	mock.InOrder(
		resolver.On("Resolve", ctx, "01310100").Return(testResolvedAddress(), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetDailyOrderCount", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, resolver, dispatcher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
