package commands

import (
	"context"
	"log/slog"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
)

// ConfirmOrderCommandHandler applies an operator's confirmed quantities and
// prices to an order: the stored line items are replaced in full
// (delete-then-reinsert inside one transaction), the total is recomputed, and
// the status moves to Confirmed. After a successful commit the bill is
// rendered and archived.
//
// Confirming an already-Confirmed order re-applies the replacement, so
// confirming twice with the same items leaves the same persisted state as
// confirming once.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	renderer   ports.BillRenderer
	archive    ports.BillArchive
	logger     *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmations.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	renderer ports.BillRenderer,
	archive ports.BillArchive,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		renderer:   renderer,
		archive:    archive,
		logger:     logger.With("component", "confirm_order_handler"),
	}
}

// Handle processes the confirmation command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, confirmItem := range cmd.Items() {
		item, err := order.NewItem(confirmItem.Name, confirmItem.Qty, confirmItem.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
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

	if err = aggregate.Confirm(items); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = repo.ReplaceItems(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.archiveBill(ctx, aggregate)
	return nil
}

// archiveBill renders and stores the confirmed order's bill. The confirmation
// is already committed, so a rendering or archive failure is logged for the
// operator instead of failing the command; the bill can be re-rendered from
// the stored order at any time.
func (h *ConfirmOrderCommandHandler) archiveBill(ctx context.Context, aggregate *order.Order) {
	bill, err := h.renderer.Render(aggregate)
	if err != nil {
		h.logger.ErrorContext(ctx, "bill rendering failed", "order_id", aggregate.ID().String(), "error", err)
		return
	}

	path, err := h.archive.Save(aggregate.ID().String(), bill)
	if err != nil {
		h.logger.ErrorContext(ctx, "bill archive failed", "order_id", aggregate.ID().String(), "error", err)
		return
	}

	h.logger.InfoContext(ctx, "bill archived", "order_id", aggregate.ID().String(), "path", path)
}
