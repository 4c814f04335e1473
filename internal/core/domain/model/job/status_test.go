package job_test

import (
	"fmt"
	"testing"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(job.Unknown))
		assert.Equal(t, 1, int(job.Requested))
		assert.Equal(t, 2, int(job.Matching))
		assert.Equal(t, 3, int(job.Assigned))
		assert.Equal(t, 4, int(job.InProgress))
		assert.Equal(t, 5, int(job.Completed))
		assert.Equal(t, 6, int(job.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []job.Status{
			job.Requested,
			job.Matching,
			job.Assigned,
			job.InProgress,
			job.Completed,
			job.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := job.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []job.Status{
			job.Status(-1),
			job.Status(7),
			job.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[job.Status]string{
		job.Unknown:     "Unknown",
		job.Requested:   "Requested",
		job.Matching:    "Matching",
		job.Assigned:    "Assigned",
		job.InProgress:  "InProgress",
		job.Completed:   "Completed",
		job.Cancelled:   "Cancelled",
		job.Status(100): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	type transition struct {
		from    job.Status
		to      job.Status
		allowed bool
	}

	allStatuses := []job.Status{
		job.Requested, job.Matching, job.Assigned,
		job.InProgress, job.Completed, job.Cancelled,
	}
	allowedPairs := map[job.Status][]job.Status{
		job.Requested:  {job.Matching, job.Cancelled},
		job.Matching:   {job.Assigned, job.Requested, job.Cancelled},
		job.Assigned:   {job.InProgress, job.Cancelled},
		job.InProgress: {job.Completed, job.Cancelled},
		job.Completed:  {},
		job.Cancelled:  {},
	}

	var cases []transition
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			allowed := false
			for _, target := range allowedPairs[from] {
				if to == target {
					allowed = true
				}
			}
			cases = append(cases, transition{from: from, to: to, allowed: allowed})
		}
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%s to %s", tc.from, tc.to)
		t.Run(name, func(t *testing.T) {
			err := tc.from.CanTransitionTo(tc.to)

			if tc.allowed {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, job.ErrInvalidTransition)

			var transitionErr *job.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tc.from, transitionErr.From)
			assert.Equal(t, tc.to, transitionErr.To)
		})
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform legal transition", func(t *testing.T) {
		next, err := job.Requested.TransitionTo(job.Matching)

		require.NoError(t, err)
		assert.Equal(t, job.Matching, next)
	})

	t.Run("should reject illegal transition", func(t *testing.T) {
		_, err := job.Completed.TransitionTo(job.InProgress)

		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrInvalidTransition)
	})

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := job.Requested.TransitionTo(job.Unknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, job.Completed.IsTerminal())
	assert.True(t, job.Cancelled.IsTerminal())

	for _, status := range []job.Status{job.Requested, job.Matching, job.Assigned, job.InProgress} {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}

func TestStatus_ValidateCanHaveTechnician(t *testing.T) {
	t.Run("pre-assignment statuses must have no technician", func(t *testing.T) {
		for _, status := range []job.Status{job.Requested, job.Matching} {
			require.NoError(t, status.ValidateCanHaveTechnician(false))
			require.Error(t, status.ValidateCanHaveTechnician(true))
		}
	})

	t.Run("assigned statuses must have a technician", func(t *testing.T) {
		for _, status := range []job.Status{job.Assigned, job.InProgress, job.Completed} {
			require.NoError(t, status.ValidateCanHaveTechnician(true))
			require.Error(t, status.ValidateCanHaveTechnician(false))
		}
	})

	t.Run("cancelled jobs may or may not have a technician", func(t *testing.T) {
		require.NoError(t, job.Cancelled.ValidateCanHaveTechnician(true))
		require.NoError(t, job.Cancelled.ValidateCanHaveTechnician(false))
	})
}
