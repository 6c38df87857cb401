package commands_test

import (
	"errors"
	"testing"

	"shoporders/internal/core/application/usecases/commands"
	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrdersCommand([]kernel.UUID{firstID, secondID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, firstID).Return(newStoredOrder(t, firstID), nil).Once(),
		orderRepo.On("Delete", ctx, firstID).Return(nil).Once(),
		orderRepo.On("Get", ctx, secondID).Return(newStoredOrder(t, secondID), nil).Once(),
		orderRepo.On("Delete", ctx, secondID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrdersCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrdersCommandHandler_Handle_SkipsMissingOrders(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	existingID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrdersCommand([]kernel.UUID{missingID, existingID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, missingID).
			Return(nil, errs.NewObjectNotFoundError("orderId", missingID)).Once(),
		orderRepo.On("Get", ctx, existingID).Return(newStoredOrder(t, existingID), nil).Once(),
		orderRepo.On("Delete", ctx, existingID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrdersCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Delete", ctx, missingID)
	orderRepo.AssertExpectations(t)
}

func TestDeleteOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteOrdersCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewDeleteOrdersCommandHandler(factory)

	err := handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrDeleteOrdersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteOrdersCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrdersCommand([]kernel.UUID{orderID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrdersCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestDeleteOrdersCommandHandler_Handle_DeleteError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewDeleteOrdersCommand([]kernel.UUID{orderID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(newStoredOrder(t, orderID), nil).Once(),
		orderRepo.On("Delete", ctx, orderID).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrdersCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "delete error")
}
