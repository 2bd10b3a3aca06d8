package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ordertrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCleanupSchedule runs the purge once a day during the low-traffic
// window. Second-granularity cron expression.
const DefaultCleanupSchedule = "0 0 3 * * *"

// NotificationCleanupJob periodically deletes read notifications that fell
// out of the retention window. Unread notifications are never touched.
type NotificationCleanupJob struct {
	handler   commands.PurgeReadNotificationsCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewNotificationCleanupJob creates the cleanup job. An empty schedule falls
// back to DefaultCleanupSchedule.
func NewNotificationCleanupJob(
	handler commands.PurgeReadNotificationsCommandHandler,
	schedule string,
	retention time.Duration,
	logger *zap.Logger,
) *NotificationCleanupJob {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}

	return &NotificationCleanupJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "notification_cleanup_job")),
	}
}

// Start schedules the cleanup job.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeReadNotificationsCommand(j.retention)
		if cmdErr != nil {
			j.logger.Error("failed to build purge command", zap.Error(cmdErr))
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.Error("notification cleanup failed", zap.Error(handleErr))
			return
		}

		if purged > 0 {
			j.logger.Info("purged read notifications", zap.Int64("count", purged))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("notification cleanup job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.Info("notification cleanup job stopped")
}
