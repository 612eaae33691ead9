package queries

import (
	"context"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
)

// GetBillQueryHandler renders the bill for a stored order on demand. The
// aggregate is rebuilt from the read views so billing never touches the
// writer boundary.
type GetBillQueryHandler struct {
	views    ports.OrderViews
	renderer ports.BillRenderer
}

// NewGetBillQueryHandler creates a handler over the given views and renderer.
func NewGetBillQueryHandler(views ports.OrderViews, renderer ports.BillRenderer) GetBillQueryHandler {
	return GetBillQueryHandler{views: views, renderer: renderer}
}

// Handle renders the bill document for the requested order.
func (h GetBillQueryHandler) Handle(ctx context.Context, query GetBillQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	view, itemViews, err := h.views.Find(ctx, query.OrderID().String())
	if err != nil {
		return nil, err
	}

	aggregate, err := restoreFromView(view, itemViews)
	if err != nil {
		return nil, err
	}

	return h.renderer.Render(aggregate)
}

func restoreFromView(view ports.OrderView, itemViews []ports.ItemView) (*order.Order, error) {
	id, err := kernel.NewOrderID(view.OrderID)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewCustomer(view.Name, view.Phone, view.Email, view.Address)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(view.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemViews))
	for _, itemView := range itemViews {
		item, itemErr := order.NewItem(itemView.Name, itemView.Qty, itemView.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customer, view.RawText, items, view.TotalPrice, status, view.CreatedAt)
}
