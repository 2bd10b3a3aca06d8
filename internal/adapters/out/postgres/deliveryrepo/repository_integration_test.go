package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/deliveryrepo"
	"ordertrack/internal/core/domain/model/delivery"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DeliveryRepositoryIntegrationTestSuite verifies delivery persistence,
// including the unique constraint on order_id.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError is required so the unique-index violation surfaces
	// as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) orderInTransit() *order.Order {
	address, err := order.NewAddress(
		"01310100", "Avenida Paulista", "1000", "Bela Vista", "Sao Paulo", "SP", "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateNumber(time.Now().UTC(), 0),
		"Box of books",
		decimal.NewFromFloat(149.90),
		address,
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Confirm())
	suite.Require().NoError(aggregate.StartDelivery())
	aggregate.ClearDomainEvents()
	return aggregate
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAddAndGetByOrderID_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.orderInTransit()

	record, err := delivery.NewDelivery(kernel.NewUUID(), aggregate, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, record))

	loaded, err := suite.repository.GetByOrderID(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(record.ID()))
	suite.True(loaded.OrderID().IsEqual(aggregate.ID()))
	suite.True(loaded.OrderNumber().IsEqual(aggregate.Number()))
	suite.True(loaded.UserID().IsEqual(aggregate.UserID()))
	suite.True(loaded.DelivererID().IsEqual(record.DelivererID()))
	suite.WithinDuration(record.DeliveredAt(), loaded.DeliveredAt(), time.Second)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderIsConflict() {
	ctx := context.Background()
	aggregate := suite.orderInTransit()

	first, err := delivery.NewDelivery(kernel.NewUUID(), aggregate, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := delivery.NewDelivery(kernel.NewUUID(), aggregate, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID_NotFound() {
	_, err := suite.repository.GetByOrderID(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
