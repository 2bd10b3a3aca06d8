package queries

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultPageLimit is used when the caller does not specify a page size.
const DefaultPageLimit = 20

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery requests a page of orders, optionally narrowed by owning
// user and/or status. The cursor is the opaque token from a previous page; an
// empty cursor starts from the beginning, and so does a malformed one.
type ListOrdersQuery struct {
	userID *kernel.UUID
	status *order.Status
	cursor string
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. A non-positive limit
// falls back to DefaultPageLimit.
func NewListOrdersQuery(userID *kernel.UUID, status *order.Status, cursor string, limit int) (ListOrdersQuery, error) {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return ListOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
		}
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if limit <= 0 {
		limit = DefaultPageLimit
	}

	return ListOrdersQuery{
		userID: userID,
		status: status,
		cursor: cursor,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the optional owning-user filter.
func (q ListOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Cursor returns the opaque resume token, empty for the first page.
func (q ListOrdersQuery) Cursor() string {
	return q.cursor
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// OrderSummaryResponse is one order in a listing page.
type OrderSummaryResponse struct {
	ID          kernel.UUID     `json:"id"`
	Number      string          `json:"number"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Status      string          `json:"status"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListOrdersResponse is one page of the order listing. NextCursor is empty
// when there are no further pages.
type ListOrdersResponse struct {
	Orders     []OrderSummaryResponse `json:"orders"`
	HasMore    bool                   `json:"has_more"`
	NextCursor string                 `json:"next_cursor,omitempty"`
	TotalCount int64                  `json:"total_count"`
}
