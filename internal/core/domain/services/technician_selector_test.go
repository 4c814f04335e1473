package services_test

import (
	"testing"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"
	"fixmarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTechnician(t *testing.T, verified bool, ratings ...int) *technician.Technician {
	t.Helper()

	tech, err := technician.NewTechnician(kernel.NewUUID(), kernel.NewUUID(), "Tech")
	require.NoError(t, err)
	if verified {
		tech.Verify()
	}
	for _, r := range ratings {
		require.NoError(t, tech.AddRating(r))
	}
	return tech
}

func TestTechnicianSelector_Select(t *testing.T) {
	selector := services.NewTechnicianSelector()

	t.Run("should pick the highest rated verified technician", func(t *testing.T) {
		low := makeTechnician(t, true, 2)
		high := makeTechnician(t, true, 5)
		mid := makeTechnician(t, true, 4)

		best, err := selector.Select(
			[]*technician.Technician{low, high, mid}, nil)

		require.NoError(t, err)
		assert.Equal(t, high.ID(), best.ID())
	})

	t.Run("should skip unverified technicians", func(t *testing.T) {
		unverified := makeTechnician(t, false)
		verified := makeTechnician(t, true, 1)

		best, err := selector.Select(
			[]*technician.Technician{unverified, verified}, nil)

		require.NoError(t, err)
		assert.Equal(t, verified.ID(), best.ID())
	})

	t.Run("should skip excluded technicians", func(t *testing.T) {
		first := makeTechnician(t, true, 5)
		second := makeTechnician(t, true, 3)

		best, err := selector.Select(
			[]*technician.Technician{first, second},
			[]kernel.UUID{first.ID()})

		require.NoError(t, err)
		assert.Equal(t, second.ID(), best.ID())
	})

	t.Run("equal ratings tie-break on ascending id", func(t *testing.T) {
		a := makeTechnician(t, true, 4)
		b := makeTechnician(t, true, 4)

		expected := a
		if b.ID().String() < a.ID().String() {
			expected = b
		}

		best, err := selector.Select([]*technician.Technician{a, b}, nil)
		require.NoError(t, err)
		assert.Equal(t, expected.ID(), best.ID())

		// Same result regardless of candidate order.
		best, err = selector.Select([]*technician.Technician{b, a}, nil)
		require.NoError(t, err)
		assert.Equal(t, expected.ID(), best.ID())
	})

	t.Run("should fail when no candidates", func(t *testing.T) {
		_, err := selector.Select(nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoEligibleTechnician)
	})

	t.Run("should fail when everyone is excluded", func(t *testing.T) {
		only := makeTechnician(t, true, 5)

		_, err := selector.Select(
			[]*technician.Technician{only},
			[]kernel.UUID{only.ID()})

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoEligibleTechnician)
	})

	t.Run("should fail when everyone is unverified", func(t *testing.T) {
		_, err := selector.Select(
			[]*technician.Technician{makeTechnician(t, false), makeTechnician(t, false)}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoEligibleTechnician)
	})

	t.Run("should reject improperly constructed candidate", func(t *testing.T) {
		var bad technician.Technician

		_, err := selector.Select([]*technician.Technician{&bad}, nil)

		require.Error(t, err)
	})
}
