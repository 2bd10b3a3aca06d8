package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr points at the pub/sub instance for realtime notification
	// pushes. Empty means pushes are disabled (no-op pusher).
	RedisAddr string

	// CleanupSchedule is the cron expression of the notification cleanup
	// job. Empty falls back to the default daily schedule.
	CleanupSchedule string

	// NotificationRetentionDays is how long read notifications are kept.
	NotificationRetentionDays int
}
