package queries

import (
	"context"

	"kirana/internal/core/ports"
)

// ListOrdersQueryHandler retrieves all orders for the admin view.
// Ordering is by creation timestamp, most recent first.
type ListOrdersQueryHandler struct {
	views ports.OrderViews
}

// NewListOrdersQueryHandler creates a handler over the given read views.
func NewListOrdersQueryHandler(views ports.OrderViews) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{views: views}
}

// Handle executes the listing.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ports.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.views.List(ctx)
}
