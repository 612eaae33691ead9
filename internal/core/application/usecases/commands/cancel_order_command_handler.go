package commands

import (
	"context"
)

// CancelOrderCommandHandler handles order cancellation. Pending and Confirmed
// orders cancel; a Shipped order cannot be cancelled and returns a
// TransitionNotAllowedError. Cancelling an already-Cancelled order is a no-op
// success.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
