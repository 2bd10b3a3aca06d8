package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(_ context.Context, _ kernel.UUID, _ bool) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByStatus(_ context.Context, _ order.Status, _ bool) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAll(_ context.Context, _ bool) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Count(_ context.Context, _ ports.OrderFilter) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetDailyOrderCount(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, record *delivery.Delivery) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetByUserID(
	_ context.Context, _ kernel.UUID,
) ([]*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockNotificationRepository) GetUnreadByUserID(
	_ context.Context, _ kernel.UUID,
) ([]*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockNotificationRepository) GetUnreadCountByUserID(_ context.Context, _ kernel.UUID) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) PurgeReadBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderDeliveryUoW struct{ mock.Mock }

func (m *MockOrderDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderDeliveryUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockOrderDeliveryUoWFactory struct{ mock.Mock }

func (m *MockOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDeliveryUoW)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

// MockEventDispatcher records dispatched events for assertions.
type MockEventDispatcher struct {
	mock.Mock
	Events []order.DomainEvent
}

func (m *MockEventDispatcher) Dispatch(ctx context.Context, events []order.DomainEvent) {
	m.Called(ctx, events)
	m.Events = append(m.Events, events...)
}

type MockAddressResolver struct{ mock.Mock }

func (m *MockAddressResolver) Resolve(ctx context.Context, cep string) (ports.ResolvedAddress, error) {
	args := m.Called(ctx, cep)
	return args.Get(0).(ports.ResolvedAddress), args.Error(1)
}

func testResolvedAddress() ports.ResolvedAddress {
	return ports.ResolvedAddress{
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	}
}

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	address, err := order.NewAddress(
		"01310100", "Avenida Paulista", "1000", "Bela Vista", "Sao Paulo", "SP", "")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(time.Now().UTC(), 0),
		"Box of books",
		decimal.NewFromFloat(149.90),
		address,
		kernel.NewUUID(),
	)
	require.NoError(t, err)
	aggregate.ClearDomainEvents()

	switch status {
	case order.Pending:
	case order.Confirmed:
		require.NoError(t, aggregate.Confirm())
	case order.InTransit:
		require.NoError(t, aggregate.Confirm())
		require.NoError(t, aggregate.StartDelivery())
	case order.Delivered:
		require.NoError(t, aggregate.Confirm())
		require.NoError(t, aggregate.StartDelivery())
		require.NoError(t, aggregate.MarkDelivered(kernel.NewUUID(), time.Now().UTC()))
	case order.Cancelled:
		require.NoError(t, aggregate.Cancel())
	default:
		t.Fatalf("unsupported test status %s", status)
	}

	aggregate.ClearDomainEvents()

	return aggregate
}
