package guard_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a value object.
func TestConstructorGuardEmbedded(t *testing.T) {
	errPlateNotConstructed := errors.New("Plate must be created via newPlate")

	type plate struct {
		value string
		guard guard.ConstructorGuard
	}

	newPlate := func(value string) (plate, error) {
		if value == "" {
			return plate{}, errors.New("plate is required")
		}
		return plate{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newPlate("ABC123")

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPlateNotConstructed))
		assert.Equal(t, "ABC123", p.value)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var p plate

		err := p.guard.Validate(errPlateNotConstructed)

		require.ErrorIs(t, err, errPlateNotConstructed)
	})

	t.Run("guard_survives_copy", func(t *testing.T) {
		p, err := newPlate("XYZ9")
		require.NoError(t, err)

		copied := p

		require.NoError(t, copied.guard.Validate(errPlateNotConstructed))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
