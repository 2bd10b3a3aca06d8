package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordertrack/cmd"
	httpserver "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/postgres/deliveryrepo"
	"ordertrack/internal/adapters/out/postgres/notificationrepo"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:                 os.Getenv("REDIS_ADDR"),
		CleanupSchedule:           os.Getenv("NOTIFICATION_CLEANUP_SCHEDULE"),
		NotificationRetentionDays: intEnv("NOTIFICATION_RETENTION_DAYS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func intEnv(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the delivery repository relies on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateStartOrderDeliveryCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderDescriptionCommandHandler(),
		app.CreateUpdateOrderDeliveryAddressCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateMarkNotificationReadCommandHandler(),
		app.CreateMarkNotificationUnreadCommandHandler(),
		app.CreateMarkAllNotificationsReadCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
		app.CreateGetUnreadNotificationCountQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
