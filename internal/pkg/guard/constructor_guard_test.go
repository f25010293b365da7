package guard_test

import (
	"errors"
	"sync"
	"testing"

	"shipdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("selection not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errSelectionNotConstructed := errors.New("Selection must be created via newSelection")

	type selection struct {
		shipmentID string
		courierID  string
		guard      guard.ConstructorGuard
	}

	newSelection := func(shipmentID, courierID string) (selection, error) {
		if shipmentID == "" || courierID == "" {
			return selection{}, errors.New("both ids are required")
		}
		return selection{shipmentID: shipmentID, courierID: courierID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		s, err := newSelection("pkg-1", "courier-1")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errSelectionNotConstructed))
		assert.Equal(t, "pkg-1", s.shipmentID)
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		s := selection{shipmentID: "pkg-1", courierID: "courier-1"}

		require.ErrorIs(t, s.guard.Validate(errSelectionNotConstructed), errSelectionNotConstructed)
	})

	t.Run("copies_keep_the_flag", func(t *testing.T) {
		s, err := newSelection("pkg-1", "courier-1")
		require.NoError(t, err)

		copied := s
		require.NoError(t, copied.guard.Validate(errSelectionNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(nil))
		}()
	}
	wg.Wait()
}
