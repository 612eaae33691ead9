package commands

import (
	"errors"
	"strings"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a customer's order submission: contact
// details plus the free-text order line ("2 rice, 3 biscuit").
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Asha Devi", "9145206349", "", "Main Road", "2 rice, 3 biscuit")
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	customer kernel.Customer
	rawText  string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a validated submission command. Name and
// address must be non-empty after trimming, the phone exactly 10 ASCII
// digits, and the order text non-empty after trimming.
func NewSubmitOrderCommand(name, phone, email, address, rawText string) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	customer, err := kernel.NewCustomer(name, phone, email, address)
	if err != nil {
		return SubmitOrderCommand{}, err
	}
	cmd.customer = customer

	if err := cmd.setRawText(rawText); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Customer returns the validated customer contact details.
func (c SubmitOrderCommand) Customer() kernel.Customer {
	return c.customer
}

// RawText returns the free-text order submission.
func (c SubmitOrderCommand) RawText() string {
	return c.rawText
}

func (c *SubmitOrderCommand) setRawText(rawText string) error {
	if strings.TrimSpace(rawText) == "" {
		return errs.NewValueIsRequiredError("rawOrderText")
	}

	c.rawText = rawText
	return nil
}
