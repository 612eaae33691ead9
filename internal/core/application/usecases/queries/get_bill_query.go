package queries

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/guard"
)

var ErrGetBillQueryIsNotConstructed = errors.New(
	"GetBillQuery must be created via NewGetBillQuery constructor",
)

// GetBillQuery requests the rendered bill for one order.
type GetBillQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetBillQuery creates a validated bill query.
func NewGetBillQuery(orderID string) (GetBillQuery, error) {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return GetBillQuery{}, err
	}

	return GetBillQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBillQuery) Validate() error {
	return q.guard.Validate(ErrGetBillQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to bill.
func (q GetBillQuery) OrderID() kernel.OrderID {
	return q.orderID
}
