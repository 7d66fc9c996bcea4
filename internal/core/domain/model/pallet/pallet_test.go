package pallet_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pallet"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(t *testing.T, slot string) *kernel.StoragePosition {
	t.Helper()
	pos, err := kernel.NewStoragePosition(kernel.NewUUID(), "A", "R1", "B1", 0, slot)
	require.NoError(t, err)
	return &pos
}

func storedPallet(t *testing.T, quantity int) *pallet.Pallet {
	t.Helper()
	p, err := pallet.NewPallet(kernel.NewUUID(), "PAL-7", 7, quantity, 40, pallet.Stored, position(t, "S1"))
	require.NoError(t, err)
	return p
}

func TestNewPallet(t *testing.T) {
	p := storedPallet(t, 10)

	require.NoError(t, p.Validate())
	assert.Equal(t, 10, p.Quantity())
	assert.True(t, p.IsStored())
	assert.True(t, p.HasResolvedPosition())
	assert.Zero(t, p.Version())
}

func TestNewPallet_Invariants(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		capacity int
		status   pallet.Status
		position *kernel.StoragePosition
		want     error
	}{
		{"over capacity", 41, 40, pallet.Shipping, nil, errs.ErrValueIsOutOfRange},
		{"negative quantity", -1, 40, pallet.Shipping, nil, errs.ErrValueIsOutOfRange},
		{"zero capacity", 0, 0, pallet.Empty, nil, errs.ErrValueIsInvalid},
		{"empty status with stock", 5, 40, pallet.Empty, nil, errs.ErrValueIsInvalid},
		{"zero quantity not empty", 0, 40, pallet.Damaged, nil, errs.ErrValueIsInvalid},
		{"stored without position", 5, 40, pallet.Stored, nil, errs.ErrValueIsRequired},
		{"unknown status", 5, 40, pallet.Unknown, nil, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pallet.NewPallet(kernel.NewUUID(), "PAL-7", 7, tt.quantity, tt.capacity, tt.status, tt.position)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPallet_Consume(t *testing.T) {
	t.Run("partial consumption keeps status", func(t *testing.T) {
		p := storedPallet(t, 10)
		pos := p.Position()

		require.NoError(t, p.Consume(5))

		assert.Equal(t, 5, p.Quantity())
		assert.Equal(t, pallet.Stored, p.Status())
		assert.True(t, p.Position().IsEqual(*pos))
		assert.Equal(t, kernel.ProductID(7), p.ProductID())
	})

	t.Run("consuming everything empties the pallet", func(t *testing.T) {
		p := storedPallet(t, 10)

		require.NoError(t, p.Consume(10))

		assert.Zero(t, p.Quantity())
		assert.Equal(t, pallet.Empty, p.Status())
	})

	t.Run("asking for too much changes nothing", func(t *testing.T) {
		p := storedPallet(t, 3)

		err := p.Consume(5)

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.Available)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 3, p.Quantity())
		assert.Equal(t, pallet.Stored, p.Status())
	})

	t.Run("non-positive request", func(t *testing.T) {
		p := storedPallet(t, 3)
		assert.ErrorIs(t, p.Consume(0), errs.ErrValueIsInvalid)
	})
}

func TestPallet_HasResolvedPosition(t *testing.T) {
	noSlot, err := pallet.NewPallet(kernel.NewUUID(), "PAL-8", 7, 5, 40, pallet.Stored, position(t, "N/A"))
	require.NoError(t, err)
	assert.False(t, noSlot.HasResolvedPosition())

	unplaced, err := pallet.NewPallet(kernel.NewUUID(), "PAL-9", 7, 5, 40, pallet.Processing, nil)
	require.NoError(t, err)
	assert.False(t, unplaced.HasResolvedPosition())
	assert.Nil(t, unplaced.Position())
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]pallet.Status{
		"stored":     pallet.Stored,
		"Stored":     pallet.Stored,
		"SHIPPING":   pallet.Shipping,
		"processing": pallet.Processing,
		"damaged":    pallet.Damaged,
		"empty":      pallet.Empty,
	} {
		got, err := pallet.ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, "stored", pallet.Stored.String())
	assert.Equal(t, "Empty", pallet.Empty.String())

	_, err := pallet.ParseStatus("lost")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
