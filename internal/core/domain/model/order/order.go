package order

import (
	"errors"
	"strings"
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer's purchase request. It is the aggregate root
// that manages the order lifecycle from submission through confirmation,
// shipment, or cancellation.
//
// Order maintains these invariants:
//   - Must have a valid OrderID and customer
//   - Keeps the raw free-text submission for audit
//   - TotalPrice equals the sum of the line-item totals after placement and
//     after every confirmation
//   - Status transitions follow the workflow defined by Status
//   - The creation timestamp is set once and never modified
//
// The struct uses private fields to ensure encapsulation; items returned to
// callers are copies with no shared mutable state.
type Order struct {
	id         kernel.OrderID
	customer   kernel.Customer
	rawText    string
	items      []Item
	totalPrice decimal.Decimal
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates a freshly submitted order in Pending status. The raw order
// text must be non-empty after trimming, items must all come from NewItem, and
// the total is computed here from the items.
func NewOrder(id kernel.OrderID, customer kernel.Customer, rawText string, items []Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setRawText(rawText),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.recomputeTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// kept as-is rather than recomputed: legacy rows may predate a recompute and
// the store is the system of record for what was written.
func RestoreOrder(
	id kernel.OrderID,
	customer kernel.Customer,
	rawText string,
	items []Item,
	totalPrice decimal.Decimal,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalPrice:    totalPrice,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setRawText(rawText),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer contact details.
func (o *Order) Customer() kernel.Customer {
	return o.customer
}

// RawText returns the original free-text submission, retained for audit.
func (o *Order) RawText() string {
	return o.rawText
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the order's grand total.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Confirm applies operator-confirmed line items: the existing item set is
// replaced in full, the total is recomputed from the replacement set, and the
// status moves to Confirmed.
//
// Confirming an already-Confirmed order is allowed and re-applies the
// replacement, so confirming twice with the same items leaves the same state
// as confirming once. Confirming a Shipped or Cancelled order fails with a
// TransitionNotAllowedError and changes nothing.
func (o *Order) Confirm(items []Item) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.recomputeTotal()
	o.status = newStatus
	return nil
}

// Ship marks a confirmed order as shipped. Shipping an already-Shipped order
// is a no-op success; any other source status is a guard violation.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws a Pending or Confirmed order. Cancelling an already-
// Cancelled order is a no-op success; cancelling a Shipped order is a guard
// violation.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) recomputeTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	o.totalPrice = total
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer kernel.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setRawText(rawText string) error {
	if strings.TrimSpace(rawText) == "" {
		return errs.NewValueIsRequiredError("rawOrderText")
	}
	o.rawText = rawText
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
