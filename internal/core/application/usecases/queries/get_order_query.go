// Package queries contains read-only operations in the CQRS architecture.
// Query handlers go through the read-side OrderViews port, which runs outside
// the writer boundary and observes at most the latest completed write.
package queries

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items, the operation behind
// the customer's "track my order" view.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated query for the given order identifier.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}
