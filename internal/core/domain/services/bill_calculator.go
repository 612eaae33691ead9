package services

import (
	"kirana/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// PriceLines converts parsed free-text items into priced line items using
// catalog prices. This is the placement-time half of bill computation; at
// confirmation the operator supplies prices directly and the same Item
// construction applies.
func PriceLines(parsed []ParsedItem, catalog PriceCatalog) ([]order.Item, error) {
	items := make([]order.Item, 0, len(parsed))
	for _, p := range parsed {
		item, err := order.NewItem(p.Name, p.Qty, catalog.PriceOf(p.Name))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Total sums the line-item totals into a grand total.
func Total(items []order.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}
