package order

import (
	"fmt"

	"kirana/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped
//	   │            │
//	   └────────────┴──> Cancelled
//
// Shipped and Cancelled are terminal. Re-applying an already-satisfied
// transition (confirming a Confirmed order, shipping a Shipped order,
// cancelling a Cancelled order) succeeds as a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly submitted order, priced from
	// the catalog and awaiting operator confirmation.
	Pending

	// Confirmed indicates an operator has confirmed quantities and prices.
	Confirmed

	// Shipped indicates the order has left the store. Terminal.
	Shipped

	// Cancelled indicates the order was withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for unrecognized values, including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Confirmed, Shipped, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//   - Confirmed -> Confirmed (idempotent re-confirmation)
//
// Any other source status returns a TransitionNotAllowedError and the
// caller's status is left unchanged.
func (s Status) Confirm() (Status, error) {
	if s != Pending && s != Confirmed {
		return Unknown, errs.NewTransitionNotAllowedError(s.String(), Confirmed.String())
	}

	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//   - Shipped -> Shipped (idempotent)
//
// Shipping a Pending or Cancelled order is a guard violation.
func (s Status) Ship() (Status, error) {
	if s != Confirmed && s != Shipped {
		return Unknown, errs.NewTransitionNotAllowedError(s.String(), Shipped.String())
	}

	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//   - Cancelled -> Cancelled (idempotent)
//
// Cancelling a Shipped order is a guard violation.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed && s != Cancelled {
		return Unknown, errs.NewTransitionNotAllowedError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
