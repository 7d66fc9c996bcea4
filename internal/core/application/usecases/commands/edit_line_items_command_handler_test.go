package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewEditLineItemsCommand(t *testing.T) {
	_, err := commands.NewEditLineItemsCommand(processingClerk, kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewEditLineItemsCommand(processingClerk, kernel.UUID{}, []commands.LineItemSpec{
		{ID: kernel.NewUUID(), ProductID: 7, Quantity: 1, UnitPrice: price(t, "1.00")},
	})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestEditLineItemsCommandHandler_Handle(t *testing.T) {
	replacement := func(t *testing.T) []commands.LineItemSpec {
		return []commands.LineItemSpec{
			{ID: kernel.NewUUID(), ProductID: 11, Quantity: 4, UnitPrice: price(t, "3.00")},
		}
	}

	t.Run("owner replaces items and totals", func(t *testing.T) {
		// Arrange
		ctx := testContext(t)
		o := pendingOrder(t, "user-17", lineItem(t, 7, 1))
		owner := access.NewActor("user-17", []string{"customer"})
		cmd, err := commands.NewEditLineItemsCommand(owner, o.ID(), replacement(t))
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewEditLineItemsCommandHandler(factory, access.NewGate())

		// Act
		edited, err := handler.Handle(ctx, cmd)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "12.00", edited.Total().String())
		assert.Equal(t, 4, edited.ItemCount())
		uow.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		// Arrange
		ctx := testContext(t)
		o := pendingOrder(t, "user-17", lineItem(t, 7, 1))
		stranger := access.NewActor("user-99", []string{"customer"})
		cmd, err := commands.NewEditLineItemsCommand(stranger, o.ID(), replacement(t))
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewEditLineItemsCommandHandler(factory, access.NewGate())

		// Act
		_, err = handler.Handle(ctx, cmd)

		// Assert
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, 1, o.ItemCount())
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("processing order is not editable", func(t *testing.T) {
		// Arrange
		ctx := testContext(t)
		o := pendingOrder(t, "user-17", lineItem(t, 7, 1))
		require.NoError(t, o.TransitionTo(order.Processing))
		cmd, err := commands.NewEditLineItemsCommand(processingClerk, o.ID(), replacement(t))
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewEditLineItemsCommandHandler(factory, access.NewGate())

		// Act
		_, err = handler.Handle(ctx, cmd)

		// Assert
		require.ErrorIs(t, err, errs.ErrInvalidState)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
