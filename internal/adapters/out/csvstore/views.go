package csvstore

import (
	"context"
	"sort"

	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"
)

// Find implements ports.OrderViews over the flat files. Reads do not take the
// writer lock; the atomic rename on commit guarantees they see either the
// previous or the new state, never a partial write.
func (s *Store) Find(_ context.Context, orderID string) (ports.OrderView, []ports.ItemView, error) {
	st := s.loadState()

	for _, record := range st.orders {
		if record.OrderID != orderID {
			continue
		}

		var items []ports.ItemView
		for _, itemRec := range st.items {
			if itemRec.OrderID != orderID {
				continue
			}
			items = append(items, ports.ItemView{
				Name:      itemRec.Item,
				Qty:       itemRec.Qty,
				UnitPrice: itemRec.UnitPrice,
				Total:     itemRec.ItemTotal,
			})
		}

		return orderViewFromRecord(record), items, nil
	}

	return ports.OrderView{}, nil, errs.NewObjectNotFoundError("order", orderID)
}

// List implements ports.OrderViews, most recent first.
func (s *Store) List(_ context.Context) ([]ports.OrderView, error) {
	st := s.loadState()

	views := make([]ports.OrderView, 0, len(st.orders))
	for _, record := range st.orders {
		views = append(views, orderViewFromRecord(record))
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	return views, nil
}

func orderViewFromRecord(record orderRecord) ports.OrderView {
	return ports.OrderView{
		OrderID:    record.OrderID,
		Name:       record.Name,
		Phone:      record.Phone,
		Email:      record.Email,
		Address:    record.Address,
		RawText:    record.RawText,
		TotalPrice: record.TotalPrice,
		Status:     record.Status.String(),
		CreatedAt:  record.CreatedAt,
	}
}
