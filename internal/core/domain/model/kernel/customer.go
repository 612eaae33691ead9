package kernel

import (
	"fmt"
	"strings"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// phoneLength is the number of ASCII digits a phone number must contain.
const phoneLength = 10

// ErrCustomerIsNotConstructed indicates that a Customer was not created through
// the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"Customer must be created via NewCustomer",
)

// Customer is a value object bundling the contact fields captured with every
// order submission.
//
// Invariants:
//   - Name and Address are non-empty after trimming
//   - Phone is exactly 10 ASCII digits
//   - Email is optional and stored as supplied (trimmed)
//
// Customer is immutable; orders hold it by value.
type Customer struct {
	name    string
	phone   string
	email   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated Customer. Name and address are trimmed and
// must be non-empty; phone must be exactly 10 ASCII digits; email may be empty.
func NewCustomer(name, phone, email, address string) (Customer, error) {
	customer := Customer{
		email: strings.TrimSpace(email),
		guard: guard.NewConstructorGuard(),
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}
	customer.name = name

	address = strings.TrimSpace(address)
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("address")
	}
	customer.address = address

	if err := validatePhone(phone); err != nil {
		return Customer{}, err
	}
	customer.phone = phone

	return customer, nil
}

// Validate ensures the Customer was constructed through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's 10-digit phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email address, possibly empty.
func (c Customer) Email() string {
	return c.email
}

// Address returns the customer's delivery address.
func (c Customer) Address() string {
	return c.address
}

func validatePhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	if len(phone) != phoneLength {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not %d digits long", phone, phoneLength))
	}

	for i := range phoneLength {
		if phone[i] < '0' || phone[i] > '9' {
			return errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q contains non-digit characters", phone))
		}
	}

	return nil
}
