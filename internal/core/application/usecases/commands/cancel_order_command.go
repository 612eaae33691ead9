package commands

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand withdraws a pending or confirmed order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a validated cancel command.
func NewCancelOrderCommand(orderID string) (CancelOrderCommand, error) {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
