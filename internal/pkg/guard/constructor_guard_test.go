package guard_test

import (
	"errors"
	"testing"

	"fixmarket/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_names_the_constructor_rule", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor",
			guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuard_CommandUsage mirrors how the command types use the
// guard: the constructor validates input and arms the guard, so a zero-value
// command is rejected before any transaction starts.
func TestConstructorGuard_CommandUsage(t *testing.T) {
	var errCommandNotConstructed = errors.New("cancel job command must be created via its constructor")

	type cancelCommand struct {
		jobID string
		guard guard.ConstructorGuard
	}

	newCancelCommand := func(jobID string) (cancelCommand, error) {
		if jobID == "" {
			return cancelCommand{}, errors.New("job id is required")
		}
		return cancelCommand{
			jobID: jobID,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("constructed_command_passes_validation", func(t *testing.T) {
		cmd, err := newCancelCommand("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd cancelCommand

		err := cmd.guard.Validate(errCommandNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errCommandNotConstructed, err)
	})

	t.Run("constructor_validates_input_before_arming_the_guard", func(t *testing.T) {
		cmd, err := newCancelCommand("")

		require.Error(t, err)
		require.Error(t, cmd.guard.Validate(errCommandNotConstructed))
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("not constructed")

	guardCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}
