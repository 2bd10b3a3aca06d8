package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// ListOrdersQueryHandler is the cursor pagination engine for order listings.
//
// The candidate set comes back from the repository already sorted by
// (createdAt desc, id desc). When both filters are supplied, the fetch uses
// the user filter and the status filter is applied in memory; pushing both
// down jointly would change the storage query layer and is left alone.
// Tombstoned orders never appear in listings.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the listing query and returns one page.
//
// A cursor that does not decode, or decodes to an id absent from the
// candidate set, silently restarts from the beginning. The total count is a
// separate query and is not transactionally consistent with the page under
// concurrent writes.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	candidates, err := h.fetchCandidates(ctx, query)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	start := 0
	if cursorID, ok := DecodeCursor(query.Cursor()); ok {
		for i, candidate := range candidates {
			if candidate.ID().IsEqual(cursorID) {
				start = i + 1
				break
			}
		}
	}

	end := start + query.Limit() + 1
	if end > len(candidates) {
		end = len(candidates)
	}
	page := candidates[start:end]

	hasMore := len(page) > query.Limit()
	if hasMore {
		page = page[:query.Limit()]
	}

	nextCursor := ""
	if hasMore {
		nextCursor = EncodeCursor(page[len(page)-1].ID())
	}

	total, err := h.orderRepo.Count(ctx, ports.OrderFilter{
		UserID:     query.UserID(),
		Status:     query.Status(),
		ActiveOnly: true,
	})
	if err != nil {
		return ListOrdersResponse{}, err
	}

	orders := make([]OrderSummaryResponse, 0, len(page))
	for _, candidate := range page {
		orders = append(orders, toOrderSummary(candidate))
	}

	return ListOrdersResponse{
		Orders:     orders,
		HasMore:    hasMore,
		NextCursor: nextCursor,
		TotalCount: total,
	}, nil
}

func (h ListOrdersQueryHandler) fetchCandidates(
	ctx context.Context,
	query ListOrdersQuery,
) ([]*order.Order, error) {
	switch {
	case query.UserID() != nil:
		candidates, err := h.orderRepo.GetByUserID(ctx, *query.UserID(), true)
		if err != nil {
			return nil, err
		}
		if query.Status() == nil {
			return candidates, nil
		}

		filtered := make([]*order.Order, 0, len(candidates))
		for _, candidate := range candidates {
			if candidate.Status() == *query.Status() {
				filtered = append(filtered, candidate)
			}
		}
		return filtered, nil

	case query.Status() != nil:
		return h.orderRepo.GetByStatus(ctx, *query.Status(), true)

	default:
		return h.orderRepo.GetAll(ctx, true)
	}
}

func toOrderSummary(o *order.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:          o.ID(),
		Number:      o.Number().String(),
		Description: o.Description(),
		Value:       o.Value(),
		Status:      o.Status().String(),
		City:        o.DeliveryAddress().City(),
		State:       o.DeliveryAddress().State(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
