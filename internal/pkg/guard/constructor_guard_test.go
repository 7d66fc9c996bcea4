package guard_test

import (
	"errors"
	"sync"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("shipment not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

type palletLabel struct {
	name  string
	guard guard.ConstructorGuard
}

var errPalletLabelNotConstructed = errors.New("palletLabel must be created via newPalletLabel")

func newPalletLabel(name string) (palletLabel, error) {
	if name == "" {
		return palletLabel{}, errors.New("name is required")
	}
	return palletLabel{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (p palletLabel) Validate() error {
	return p.guard.Validate(errPalletLabelNotConstructed)
}

func TestConstructorGuardEmbedded(t *testing.T) {
	t.Run("constructed_value_validates", func(t *testing.T) {
		label, err := newPalletLabel("P-001")
		require.NoError(t, err)
		require.NoError(t, label.Validate())
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		label := palletLabel{name: "P-001"}
		require.ErrorIs(t, label.Validate(), errPalletLabelNotConstructed)
	})

	t.Run("copies_keep_state", func(t *testing.T) {
		label, _ := newPalletLabel("P-002")
		copied := label
		require.NoError(t, copied.Validate())
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
