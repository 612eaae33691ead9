package order

import (
	"fmt"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed indicates that an Item was not created through the
// NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem")

// Item is a value object representing one priced line within an order.
// Its total is fixed at construction as Qty x UnitPrice.
//
// The name may be empty and the quantity zero: free-text intake keeps an
// empty fragment as a zero-quantity, empty-name line so the stored rows
// line up with the raw order text. Such lines never contribute to a total.
type Item struct {
	name      string
	qty       decimal.Decimal
	unitPrice decimal.Decimal
	total     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates a priced line item. The unit price must not be negative;
// quantities may be fractional (0.5 kg) and the item total is computed here,
// once, so every persisted row satisfies ItemTotal = Qty x UnitPrice.
func NewItem(name string, qty, unitPrice decimal.Decimal) (Item, error) {
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return Item{
		name:      name,
		qty:       qty,
		unitPrice: unitPrice,
		total:     qty.Mul(unitPrice),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item name as the customer wrote it.
func (i Item) Name() string {
	return i.name
}

// Qty returns the quantity, possibly fractional.
func (i Item) Qty() decimal.Decimal {
	return i.qty
}

// UnitPrice returns the per-unit price.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Total returns Qty x UnitPrice.
func (i Item) Total() decimal.Decimal {
	return i.total
}
