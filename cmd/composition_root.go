package cmd

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/notificationrepo"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/redispusher"
	"ordertrack/internal/adapters/out/viacep"
	"ordertrack/internal/core/application/events"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   ports.AddressResolver
	dispatcher *events.Dispatcher
	logger     *zap.Logger
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	var pusher ports.RealtimePusher
	if config.RedisAddr != "" {
		client, err := redispusher.Connect(config.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, realtime pushes disabled", zap.Error(err))
			pusher = redispusher.NewNoopPusher()
		} else {
			pusher = redispusher.NewRedisPusher(client)
		}
	} else {
		pusher = redispusher.NewNoopPusher()
	}

	notificationHandler := events.NewNotificationHandler(
		notificationrepo.NewGormNotificationRepository(gormDB),
		pusher,
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   viacep.NewClient(),
		dispatcher: events.NewDispatcher(notificationHandler, logger),
		logger:     logger,
		config:     config,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.resolver, c.dispatcher)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateStartOrderDeliveryCommandHandler() commands.StartOrderDeliveryCommandHandler {
	return commands.NewStartOrderDeliveryCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderDescriptionCommandHandler() commands.UpdateOrderDescriptionCommandHandler {
	return commands.NewUpdateOrderDescriptionCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderDeliveryAddressCommandHandler() commands.UpdateOrderDeliveryAddressCommandHandler {
	return commands.NewUpdateOrderDeliveryAddressCommandHandler(c.orderUoWFactory(), c.resolver, c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationUnreadCommandHandler() commands.MarkNotificationUnreadCommandHandler {
	return commands.NewMarkNotificationUnreadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	return commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreadNotificationCountQueryHandler() queries.GetUnreadNotificationCountQueryHandler {
	return queries.NewGetUnreadNotificationCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retention := time.Duration(c.config.NotificationRetentionDays) * 24 * time.Hour
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	handler := c.CreatePurgeReadNotificationsCommandHandler()
	cleanupJob := jobs.NewNotificationCleanupJob(handler, c.config.CleanupSchedule, retention, c.logger)
	return jobs.NewJobManager(cleanupJob)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
