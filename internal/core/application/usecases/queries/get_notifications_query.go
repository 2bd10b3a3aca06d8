package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's notifications, newest first.
// With unreadOnly set, notifications already marked read are skipped.
type GetNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a user's notifications.
func NewGetNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the user whose notifications are requested.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// UnreadOnly reports whether read notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// NotificationResponse is one notification in a listing.
type NotificationResponse struct {
	ID        kernel.UUID `json:"id"`
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      string      `json:"data"`
	Read      bool        `json:"read"`
	ReadAt    *time.Time  `json:"read_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
