package commands

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmItem is one operator-edited line: the item name with the confirmed
// quantity and negotiated unit price, which may differ from the catalog price.
type ConfirmItem struct {
	Name      string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
}

// ConfirmOrderCommand represents an operator confirming an order's quantities
// and prices. The supplied items replace the stored line items in full and the
// order's total is recomputed from them.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	items   []ConfirmItem

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a validated confirmation command.
// The items slice is copied; it may be empty when the operator zeroes out an
// order before cancelling it.
func NewConfirmOrderCommand(orderID string, items []ConfirmItem) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	id, err := kernel.NewOrderID(orderID)
	if err != nil {
		return ConfirmOrderCommand{}, err
	}
	cmd.orderID = id

	cmd.items = make([]ConfirmItem, len(items))
	copy(cmd.items, items)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Items returns a copy of the operator-edited lines.
func (c ConfirmOrderCommand) Items() []ConfirmItem {
	items := make([]ConfirmItem, len(c.items))
	copy(items, c.items)
	return items
}
