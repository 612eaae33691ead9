package csvstore

import (
	"context"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"
)

// unitOfWork is one mutating transaction over the flat files. Begin takes the
// store's writer lock and snapshots the current state; repository calls mutate
// the snapshot in memory; Commit rewrites both files atomically and releases
// the lock; Rollback discards the snapshot and releases the lock.
type unitOfWork struct {
	store  *Store
	state  state
	active bool
}

func (u *unitOfWork) Begin(_ context.Context) error {
	u.store.writerMu.Lock()
	u.state = u.store.loadState()
	u.active = true
	return nil
}

func (u *unitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveUnitOfWork
	}

	err := u.store.writeState(u.state)
	u.active = false
	u.store.writerMu.Unlock()
	if err != nil {
		return errs.NewPersistenceFailedErrorWithCause("commit order store", err)
	}
	return nil
}

func (u *unitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveUnitOfWork
	}

	u.state = state{}
	u.active = false
	u.store.writerMu.Unlock()
	return nil
}

func (u *unitOfWork) OrderRepository() ports.OrderRepository {
	return &fileOrderRepository{uow: u}
}

// fileOrderRepository operates on the unit of work's in-memory snapshot.
type fileOrderRepository struct {
	uow *unitOfWork
}

func (r *fileOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return errs.NewPersistenceFailedErrorWithCause("add order", ErrNoActiveUnitOfWork)
	}

	record, itemRecords := recordsFromDomain(aggregate)
	r.uow.state.orders = append(r.uow.state.orders, record)
	r.uow.state.items = append(r.uow.state.items, itemRecords...)
	return nil
}

func (r *fileOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return errs.NewPersistenceFailedErrorWithCause("update order", ErrNoActiveUnitOfWork)
	}

	id := aggregate.ID().String()
	for i := range r.uow.state.orders {
		if r.uow.state.orders[i].OrderID == id {
			r.uow.state.orders[i].Status = aggregate.Status()
			r.uow.state.orders[i].TotalPrice = aggregate.TotalPrice()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("order", id)
}

func (r *fileOrderRepository) ReplaceItems(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return errs.NewPersistenceFailedErrorWithCause("replace order items", ErrNoActiveUnitOfWork)
	}

	id := aggregate.ID().String()
	kept := r.uow.state.items[:0:len(r.uow.state.items)]
	for _, record := range r.uow.state.items {
		if record.OrderID != id {
			kept = append(kept, record)
		}
	}

	_, itemRecords := recordsFromDomain(aggregate)
	r.uow.state.items = append(kept, itemRecords...)
	return nil
}

func (r *fileOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if !r.uow.active {
		return nil, errs.NewPersistenceFailedErrorWithCause("get order", ErrNoActiveUnitOfWork)
	}
	return findInState(r.uow.state, id.String())
}

func (r *fileOrderRepository) Exists(_ context.Context, id kernel.OrderID) (bool, error) {
	if !r.uow.active {
		return false, errs.NewPersistenceFailedErrorWithCause("check order existence", ErrNoActiveUnitOfWork)
	}

	for _, record := range r.uow.state.orders {
		if record.OrderID == id.String() {
			return true, nil
		}
	}
	return false, nil
}

func recordsFromDomain(aggregate *order.Order) (orderRecord, []itemRecord) {
	customer := aggregate.Customer()
	record := orderRecord{
		OrderID:    aggregate.ID().String(),
		Name:       customer.Name(),
		Phone:      customer.Phone(),
		Email:      customer.Email(),
		Address:    customer.Address(),
		RawText:    aggregate.RawText(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	items := aggregate.Items()
	itemRecords := make([]itemRecord, 0, len(items))
	for _, item := range items {
		itemRecords = append(itemRecords, itemRecord{
			OrderID:   record.OrderID,
			Item:      item.Name(),
			Qty:       item.Qty(),
			UnitPrice: item.UnitPrice(),
			ItemTotal: item.Total(),
		})
	}

	return record, itemRecords
}

func findInState(st state, id string) (*order.Order, error) {
	for _, record := range st.orders {
		if record.OrderID != id {
			continue
		}
		return recordToDomain(record, st.items)
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

func recordToDomain(record orderRecord, allItems []itemRecord) (*order.Order, error) {
	orderID, err := kernel.NewOrderID(record.OrderID)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewCustomer(record.Name, record.Phone, record.Email, record.Address)
	if err != nil {
		return nil, err
	}

	var items []order.Item
	for _, itemRec := range allItems {
		if itemRec.OrderID != record.OrderID {
			continue
		}
		item, itemErr := order.NewItem(itemRec.Item, itemRec.Qty, itemRec.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		orderID,
		customer,
		record.RawText,
		items,
		record.TotalPrice,
		record.Status,
		record.CreatedAt,
	)
}
