package commands

import (
	"context"
)

// ShipOrderCommandHandler handles the shipment transition. Shipping an order
// that is not Confirmed is a guard violation: the handler returns a
// TransitionNotAllowedError and the order is left untouched. Shipping an
// already-Shipped order is a no-op success.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for shipment transitions.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ship command.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if err = aggregate.Ship(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
