package commands

import (
	"context"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/services"
)

// SubmitOrderCommandHandler handles the business logic for order submission:
// parsing the free-text order, pricing the lines from the catalog, minting a
// collision-free identifier, and persisting the order in Pending status.
//
// Identifier generation runs inside the same unit of work as the create, so
// two concurrent submissions cannot both pass the uniqueness check against a
// stale snapshot.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    services.PriceCatalog
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory, catalog services.PriceCatalog) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the submission and returns the new order's identifier.
// Parsing and pricing defects are resolved with defaults (quantity 1, price 0)
// rather than rejected, since free-text input is expected to be imperfect.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	items, err := services.PriceLines(services.ParseItems(cmd.RawText()), h.catalog)
	if err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	orderID, err := generateOrderID(ctx, repo)
	if err != nil {
		return kernel.OrderID{}, err
	}

	aggregate, err := order.NewOrder(orderID, cmd.Customer(), cmd.RawText(), items)
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	return orderID, nil
}

// generateOrderID mints an identifier checked against the repository bound to
// the current transaction. A repository failure during the check marks the
// candidate taken so a possibly-colliding code is never used; the failure is
// surfaced once generation returns.
func generateOrderID(ctx context.Context, repo interface {
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)
},
) (kernel.OrderID, error) {
	var checkErr error

	orderID, err := kernel.GenerateOrderID(func(candidate string) bool {
		id, idErr := kernel.NewOrderID(candidate)
		if idErr != nil {
			checkErr = idErr
			return true
		}

		exists, existsErr := repo.Exists(ctx, id)
		if existsErr != nil {
			checkErr = existsErr
			return true
		}

		return exists
	})

	if checkErr != nil {
		return kernel.OrderID{}, checkErr
	}
	if err != nil {
		return kernel.OrderID{}, err
	}

	return orderID, nil
}
