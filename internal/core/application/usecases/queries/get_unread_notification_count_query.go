package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrGetUnreadNotificationCountQueryIsNotConstructed = errors.New(
	"GetUnreadNotificationCountQuery must be created via NewGetUnreadNotificationCountQuery constructor",
)

// GetUnreadNotificationCountQuery retrieves the number of unread
// notifications a user has, typically shown as a badge counter.
type GetUnreadNotificationCountQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnreadNotificationCountQuery creates a query for a user's unread notification count.
func NewGetUnreadNotificationCountQuery(userID kernel.UUID) (GetUnreadNotificationCountQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUnreadNotificationCountQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetUnreadNotificationCountQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnreadNotificationCountQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadNotificationCountQueryIsNotConstructed)
}

// UserID returns the user whose unread count is requested.
func (q GetUnreadNotificationCountQuery) UserID() kernel.UUID {
	return q.userID
}
