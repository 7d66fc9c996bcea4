package errs_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentErrors_Messages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "forbidden",
			err:      errs.NewForbiddenError("transition order to Processing"),
			sentinel: errs.ErrForbidden,
			message:  "forbidden: transition order to Processing",
		},
		{
			name:     "forbidden with cause",
			err:      errs.NewForbiddenErrorWithCause("cancel order", errors.New("not the owner")),
			sentinel: errs.ErrForbidden,
			message:  "forbidden: cancel order (cause: not the owner)",
		},
		{
			name:     "invalid state",
			err:      errs.NewInvalidStateError("order", "Shipped", "edit line items of"),
			sentinel: errs.ErrInvalidState,
			message:  `invalid state: cannot edit line items of order in status "Shipped"`,
		},
		{
			name:     "invalid transition",
			err:      errs.NewInvalidTransitionError("order", "Pending", "Shipped"),
			sentinel: errs.ErrInvalidTransition,
			message:  `invalid transition: order cannot move from "Pending" to "Shipped"`,
		},
		{
			name:     "insufficient stock",
			err:      errs.NewInsufficientStockError(7, "p-1", 3, 5),
			sentinel: errs.ErrInsufficientStock,
			message:  "insufficient stock: product 7, pallet p-1 holds 3, requested 5",
		},
		{
			name:     "no stock location",
			err:      errs.NewNoStockLocationError(7),
			sentinel: errs.ErrNoStockLocation,
			message:  "no stock location: product 7",
		},
		{
			name:     "stale allocation",
			err:      errs.NewStaleAllocationError("p-1"),
			sentinel: errs.ErrStaleAllocation,
			message:  "stale allocation: pallet p-1 changed since selection",
		},
		{
			name:     "not shippable",
			err:      errs.NewNotShippableError("o-1", "is not ready for shipping"),
			sentinel: errs.ErrNotShippable,
			message:  "not shippable: order o-1 is not ready for shipping",
		},
		{
			name:     "incomplete deliveries",
			err:      errs.NewIncompleteDeliveriesError("s-1", 2),
			sentinel: errs.ErrIncompleteDeliveries,
			message:  "incomplete deliveries: shipment s-1 has 2 undelivered orders",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestTransportError(t *testing.T) {
	t.Run("unwraps to sentinel and cause", func(t *testing.T) {
		err := errs.NewTransportError("update pallet", context.DeadlineExceeded)

		require.ErrorIs(t, err, errs.ErrTransport)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "transport error: update pallet (cause: context deadline exceeded)", err.Error())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewTransportError("begin transaction", nil)

		require.ErrorIs(t, err, errs.ErrTransport)
		assert.Equal(t, "transport error: begin transaction", err.Error())
	})
}

func TestFulfillmentErrors_AreDistinct(t *testing.T) {
	err := errs.NewInsufficientStockError(1, 2, 0, 1)

	require.NotErrorIs(t, err, errs.ErrNoStockLocation)
	require.NotErrorIs(t, err, errs.ErrStaleAllocation)

	var target *errs.InsufficientStockError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 1, target.Requested)
}
