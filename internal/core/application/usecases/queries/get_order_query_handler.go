package queries

import (
	"context"

	"kirana/internal/core/ports"
)

// GetOrderQueryHandler retrieves one order with its line items.
// Returns ObjectNotFoundError when the identifier is unknown.
type GetOrderQueryHandler struct {
	views ports.OrderViews
}

// NewGetOrderQueryHandler creates a handler over the given read views.
func NewGetOrderQueryHandler(views ports.OrderViews) GetOrderQueryHandler {
	return GetOrderQueryHandler{views: views}
}

// Handle executes the lookup.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (ports.OrderView, []ports.ItemView, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderView{}, nil, err
	}

	return h.views.Find(ctx, query.OrderID().String())
}
