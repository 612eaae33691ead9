package commands_test

import (
	"context"
	"testing"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceItems(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockBillRenderer struct{ mock.Mock }

func (m *MockBillRenderer) Render(aggregate *order.Order) ([]byte, error) {
	args := m.Called(aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockBillArchive struct{ mock.Mock }

func (m *MockBillArchive) Save(orderID string, bill []byte) (string, error) {
	args := m.Called(orderID, bill)
	return args.String(0), args.Error(1)
}

// storedOrder builds an aggregate in the given status for Get expectations.
func storedOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	customer, err := kernel.NewCustomer("Asha Rao", "9876543210", "", "12 Temple St")
	require.NoError(t, err)
	item, err := order.NewItem("rice", decimal.NewFromInt(2), decimal.NewFromInt(50))
	require.NoError(t, err)

	aggregate, err := order.NewOrder(orderID, customer, "2 rice", []order.Item{item})
	require.NoError(t, err)

	switch status {
	case order.Confirmed:
		require.NoError(t, aggregate.Confirm(aggregate.Items()))
	case order.Shipped:
		require.NoError(t, aggregate.Confirm(aggregate.Items()))
		require.NoError(t, aggregate.Ship())
	case order.Cancelled:
		require.NoError(t, aggregate.Cancel())
	case order.Unknown, order.Pending:
	}

	return aggregate
}
