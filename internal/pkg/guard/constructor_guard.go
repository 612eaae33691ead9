// Package guard implements the constructor guard pattern used by value objects,
// commands, and queries to reject zero-value instances that bypassed their
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embedding a
// ConstructorGuard in a struct makes zero-value instances detectable: only
// values built through the designated constructor carry a constructed guard.
//
// Example usage:
//
//	var ErrOrderIDNotConstructed = errors.New("OrderID must be created via NewOrderID")
//
//	type OrderID struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderID(value string) (OrderID, error) {
//	    // validate value...
//	    return OrderID{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (id OrderID) Validate() error {
//	    return id.guard.Validate(ErrOrderIDNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was constructed through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
