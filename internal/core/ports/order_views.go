package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderView is the read-side projection of one order row.
type OrderView struct {
	OrderID    string
	Name       string
	Phone      string
	Email      string
	Address    string
	RawText    string
	TotalPrice decimal.Decimal
	Status     string
	CreatedAt  time.Time
}

// ItemView is the read-side projection of one line-item row.
type ItemView struct {
	Name      string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// OrderViews is the query-side contract. Reads run outside the writer
// boundary and may observe at most the latest completed write.
type OrderViews interface {
	// Find returns one order with its items.
	// Returns ObjectNotFoundError when absent.
	Find(ctx context.Context, orderID string) (OrderView, []ItemView, error)

	// List returns all orders, most recent first.
	List(ctx context.Context) ([]OrderView, error)
}
