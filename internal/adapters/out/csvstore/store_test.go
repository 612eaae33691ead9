package csvstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(filepath.Join(dir, "orders.csv"), filepath.Join(dir, "order_items.csv"), logger)
}

func newTestOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)

	customer, err := kernel.NewCustomer("Asha Rao", "9876543210", "asha@example.com", "12 Temple St")
	require.NoError(t, err)

	rice, err := order.NewItem("rice", decimal.NewFromInt(2), decimal.NewFromInt(50))
	require.NoError(t, err)
	sugar, err := order.NewItem("sugar", decimal.NewFromInt(1), decimal.NewFromInt(40))
	require.NoError(t, err)

	aggregate, err := order.NewOrder(orderID, customer, "2 rice, sugar", []order.Item{rice, sugar})
	require.NoError(t, err)
	return aggregate
}

func submit(t *testing.T, store *Store, aggregate *order.Order) {
	t.Helper()
	ctx := context.Background()

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	aggregate := newTestOrder(t, "AB12CD34")

	submit(t, store, aggregate)

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback(ctx)

	restored, err := uow.OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)

	assert.Equal(t, aggregate.ID().String(), restored.ID().String())
	assert.Equal(t, "Asha Rao", restored.Customer().Name())
	assert.Equal(t, "2 rice, sugar", restored.RawText())
	assert.Equal(t, order.Pending, restored.Status())
	assert.True(t, restored.TotalPrice().Equal(decimal.NewFromInt(140)))
	require.Len(t, restored.Items(), 2)
	assert.Equal(t, "rice", restored.Items()[0].Name())
	assert.Equal(t, "sugar", restored.Items()[1].Name())
}

func TestStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	submit(t, store, newTestOrder(t, "AB12CD34"))

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback(ctx)

	missing, err := kernel.NewOrderID("ZZ99ZZ99")
	require.NoError(t, err)

	_, err = uow.OrderRepository().Get(ctx, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_UpdateAndReplaceItems(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	aggregate := newTestOrder(t, "AB12CD34")
	submit(t, store, aggregate)

	priced, err := order.NewItem("rice", decimal.NewFromInt(2), decimal.NewFromInt(55))
	require.NoError(t, err)
	require.NoError(t, aggregate.Confirm([]order.Item{priced}))

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	repo := uow.OrderRepository()
	require.NoError(t, repo.Update(ctx, aggregate))
	require.NoError(t, repo.ReplaceItems(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	view, items, err := store.Find(ctx, "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", view.Status)
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(110)))
	require.Len(t, items, 1)
	assert.Equal(t, "rice", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(55)))
}

func TestStore_UpdateMissingOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	aggregate := newTestOrder(t, "AB12CD34")

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback(ctx)

	err := uow.OrderRepository().Update(ctx, aggregate)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_RollbackDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	uow := store.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, newTestOrder(t, "AB12CD34")))
	require.NoError(t, uow.Rollback(ctx))

	views, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestStore_CommitWithoutBegin(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	uow := store.Create()
	assert.ErrorIs(t, uow.Commit(ctx), ErrNoActiveUnitOfWork)
	assert.ErrorIs(t, uow.Rollback(ctx), ErrNoActiveUnitOfWork)
}

func TestStore_LoadToleratesMalformedRows(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	submit(t, store, newTestOrder(t, "AB12CD34"))
	submit(t, store, newTestOrder(t, "EF56GH78"))

	// Append a row with an unparseable total and one with a bogus status.
	f, err := os.OpenFile(store.ordersPath, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("XX11XX11,Mo,9999999999,,Lane 5,dal,not-a-number,Pending,2024-01-02 10:00:00\n")
	require.NoError(t, err)
	_, err = f.WriteString("YY22YY22,Mo,9999999999,,Lane 5,dal,100,Teleported,2024-01-02 10:00:00\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	report := store.Report(ctx)
	assert.Equal(t, 2, report.Orders)
	assert.Equal(t, 2, report.SkippedOrders)

	views, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestStore_LoadMissingFilesIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	views, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)

	report := store.Report(ctx)
	assert.Zero(t, report.Orders)
	assert.Zero(t, report.SkippedOrders)
}

func TestStore_LoadPadsMissingOptionalColumns(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	submit(t, store, newTestOrder(t, "AB12CD34"))

	// Rewrite the file with a short row: email, address and raw text absent.
	content := "OrderID,Name,Phone,Email,Address,Order,TotalPrice,Status,Timestamp\n" +
		"EF56GH78,Mo,9999999999,,,,100,Pending,2024-01-02 10:00:00\n"
	require.NoError(t, os.WriteFile(store.ordersPath, []byte(content), 0o644))

	views, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "EF56GH78", views[0].OrderID)
	assert.Empty(t, views[0].Email)
}

func TestStore_ConcurrentSubmissionsStayUnique(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	const writers = 16
	var wg sync.WaitGroup
	ids := make(chan string, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			uow := store.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			repo := uow.OrderRepository()

			id, err := kernel.GenerateOrderID(func(candidate string) bool {
				candidateID, idErr := kernel.NewOrderID(candidate)
				if idErr != nil {
					return true
				}
				taken, existsErr := repo.Exists(ctx, candidateID)
				return existsErr != nil || taken
			})
			if err != nil {
				_ = uow.Rollback(ctx)
				return
			}

			customer, _ := kernel.NewCustomer(fmt.Sprintf("Customer %d", n), "9876543210", "", "Lane 1")
			item, _ := order.NewItem("rice", decimal.NewFromInt(1), decimal.NewFromInt(50))
			aggregate, err := order.NewOrder(id, customer, "rice", []order.Item{item})
			if err != nil {
				_ = uow.Rollback(ctx)
				return
			}

			if err := repo.Add(ctx, aggregate); err != nil {
				_ = uow.Rollback(ctx)
				return
			}
			if err := uow.Commit(ctx); err != nil {
				return
			}
			ids <- id.String()
		}(i)
	}

	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers)

	views, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, views, writers)
}

func TestStore_ListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	content := "OrderID,Name,Phone,Email,Address,Order,TotalPrice,Status,Timestamp\n" +
		"AA11AA11,Mo,9999999999,,Lane 5,rice,50,Pending,2024-01-01 10:00:00\n" +
		"BB22BB22,Mo,9999999999,,Lane 5,rice,50,Pending,2024-01-03 10:00:00\n" +
		"CC33CC33,Mo,9999999999,,Lane 5,rice,50,Pending,2024-01-02 10:00:00\n"
	require.NoError(t, os.WriteFile(store.ordersPath, []byte(content), 0o644))

	views, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "BB22BB22", views[0].OrderID)
	assert.Equal(t, "CC33CC33", views[1].OrderID)
	assert.Equal(t, "AA11AA11", views[2].OrderID)
}
