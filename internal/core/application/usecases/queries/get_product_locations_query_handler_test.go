package queries_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pallet"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPalletRepository struct {
	mock.Mock
}

func (m *MockPalletRepository) Add(ctx context.Context, aggregate *pallet.Pallet) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPalletRepository) Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pallet.Pallet), args.Error(1)
}

func (m *MockPalletRepository) GetByProduct(ctx context.Context, productID kernel.ProductID) ([]*pallet.Pallet, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pallet.Pallet), args.Error(1)
}

func (m *MockPalletRepository) UpdateIfUnchanged(ctx context.Context, aggregate *pallet.Pallet, expectedQuantity int) error {
	args := m.Called(ctx, aggregate, expectedQuantity)
	return args.Error(0)
}

func newPallet(t *testing.T, name string, quantity int, status pallet.Status, slot string) *pallet.Pallet {
	t.Helper()
	var position *kernel.StoragePosition
	if status == pallet.Stored {
		pos, err := kernel.NewStoragePosition(kernel.NewUUID(), "A", "R1", "B3", 2, slot)
		require.NoError(t, err)
		position = &pos
	}
	p, err := pallet.NewPallet(kernel.NewUUID(), name, 7, quantity, 100, status, position)
	require.NoError(t, err)
	return p
}

func TestGetProductLocationsQueryHandler_RanksLikeTheAllocator(t *testing.T) {
	inTransit := newPallet(t, "in transit", 90, pallet.Shipping, "")
	unresolved := newPallet(t, "unresolved", 80, pallet.Stored, "N/A")
	small := newPallet(t, "small", 5, pallet.Stored, "S01")
	large := newPallet(t, "large", 40, pallet.Stored, "S02")

	repo := new(MockPalletRepository)
	repo.On("GetByProduct", mock.Anything, kernel.ProductID(7)).
		Return([]*pallet.Pallet{inTransit, unresolved, small, large}, nil)

	handler := queries.NewGetProductLocationsQueryHandler(repo, access.NewGate(), services.NewPalletAllocator())
	query, err := queries.NewGetProductLocationsQuery(clerk, 7)
	require.NoError(t, err)

	locations, err := handler.Handle(testContext(t), query)

	require.NoError(t, err)
	require.Len(t, locations, 4)
	names := make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"large", "small", "unresolved", "in transit"}, names)
	assert.Equal(t, "A/R1/B3/L2/S02", locations[0].Position)
	assert.True(t, locations[0].Resolved)
	assert.False(t, locations[2].Resolved)
	assert.Empty(t, locations[3].Position)
	repo.AssertExpectations(t)
}

func TestGetProductLocationsQueryHandler_NoPallets(t *testing.T) {
	repo := new(MockPalletRepository)
	repo.On("GetByProduct", mock.Anything, kernel.ProductID(7)).Return([]*pallet.Pallet{}, nil)

	handler := queries.NewGetProductLocationsQueryHandler(repo, access.NewGate(), services.NewPalletAllocator())
	query, err := queries.NewGetProductLocationsQuery(clerk, 7)
	require.NoError(t, err)

	locations, err := handler.Handle(testContext(t), query)

	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestGetProductLocationsQueryHandler_Errors(t *testing.T) {
	t.Run("customer is refused before reading", func(t *testing.T) {
		repo := new(MockPalletRepository)
		handler := queries.NewGetProductLocationsQueryHandler(repo, access.NewGate(), services.NewPalletAllocator())
		query, err := queries.NewGetProductLocationsQuery(access.NewActor("user-17", []string{"customer"}), 7)
		require.NoError(t, err)

		_, err = handler.Handle(testContext(t), query)

		require.ErrorIs(t, err, errs.ErrForbidden)
		repo.AssertNotCalled(t, "GetByProduct", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockPalletRepository)
		repo.On("GetByProduct", mock.Anything, kernel.ProductID(7)).
			Return(nil, errs.NewTransportError("select pallets by product", errors.New("connection reset")))
		handler := queries.NewGetProductLocationsQueryHandler(repo, access.NewGate(), services.NewPalletAllocator())
		query, err := queries.NewGetProductLocationsQuery(clerk, 7)
		require.NoError(t, err)

		_, err = handler.Handle(testContext(t), query)

		require.ErrorIs(t, err, errs.ErrTransport)
	})

	t.Run("query not constructed", func(t *testing.T) {
		handler := queries.NewGetProductLocationsQueryHandler(new(MockPalletRepository), access.NewGate(), services.NewPalletAllocator())

		_, err := handler.Handle(testContext(t), queries.GetProductLocationsQuery{})

		require.ErrorIs(t, err, queries.ErrGetProductLocationsQueryIsNotConstructed)
	})
}
