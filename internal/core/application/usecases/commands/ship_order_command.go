package commands

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
)

// ShipOrderCommand marks a confirmed order as shipped.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a validated ship command.
func NewShipOrderCommand(orderID string) (ShipOrderCommand, error) {
	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
