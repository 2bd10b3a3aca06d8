package ports

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
)

// NotificationPayload is the lightweight message pushed over the realtime
// channel after a notification has been persisted.
type NotificationPayload struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Data      string    `json:"data,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// RealtimePusher delivers notification payloads to a user's live channel.
// Delivery is best effort: a failed push is logged and dropped, the persisted
// notification remains retrievable through the polling queries.
type RealtimePusher interface {
	// SendToUser publishes the payload on the channel of the given user.
	SendToUser(ctx context.Context, userID kernel.UUID, payload NotificationPayload) error
}
