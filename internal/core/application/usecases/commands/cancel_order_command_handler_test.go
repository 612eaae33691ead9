package commands_test

import (
	"testing"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CancelsPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand("AB12CD34")
	require.NoError(t, err)

	stored := storedOrder(t, "AB12CD34", order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, mock.Anything).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Cancelled, stored.Status())
}

func TestCancelOrderCommandHandler_Handle_CancelsConfirmed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand("AB12CD34")
	require.NoError(t, err)

	stored := storedOrder(t, "AB12CD34", order.Confirmed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, mock.Anything).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Cancelled, stored.Status())
}

func TestCancelOrderCommandHandler_Handle_ShippedOrderRejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand("AB12CD34")
	require.NoError(t, err)

	stored := storedOrder(t, "AB12CD34", order.Shipped)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, mock.Anything).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	require.Equal(t, order.Shipped, stored.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelledIsNoOp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand("AB12CD34")
	require.NoError(t, err)

	stored := storedOrder(t, "AB12CD34", order.Cancelled)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, mock.Anything).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Cancelled, stored.Status())
}
