package job_test

import (
	"testing"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) *job.Job {
	t.Helper()

	price := int64(15000)
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Replace broken socket",
		"42 Oak Avenue",
		&price,
	)
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("should create job in Requested status without technician", func(t *testing.T) {
		j := newTestJob(t)

		assert.Equal(t, job.Requested, j.Status())
		assert.Nil(t, j.Technician())
		require.NoError(t, j.Validate())
	})

	t.Run("should reject empty location", func(t *testing.T) {
		_, err := job.NewJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "", nil)

		require.Error(t, err)
	})

	t.Run("should reject negative estimated price", func(t *testing.T) {
		price := int64(-1)
		_, err := job.NewJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", &price)

		require.Error(t, err)
	})

	t.Run("should allow nil estimated price", func(t *testing.T) {
		j, err := job.NewJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil)

		require.NoError(t, err)
		assert.Nil(t, j.EstimatedPriceCents())
	})

	t.Run("should reject empty customer id", func(t *testing.T) {
		_, err := job.NewJob(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil)

		require.Error(t, err)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("should reject job not created via constructor", func(t *testing.T) {
		var j job.Job
		err := j.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrJobIsNotConstructed)
	})

	t.Run("should reject nil job", func(t *testing.T) {
		var j *job.Job
		err := j.Validate()

		require.Error(t, err)
	})
}

func TestJob_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		j := newTestJob(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, j.StartMatching())
		assert.Equal(t, job.Matching, j.Status())

		require.NoError(t, j.Assign(technicianID))
		assert.Equal(t, job.Assigned, j.Status())
		require.NotNil(t, j.Technician())
		assert.Equal(t, technicianID, *j.Technician())

		require.NoError(t, j.Start(technicianID))
		assert.Equal(t, job.InProgress, j.Status())

		require.NoError(t, j.Complete(technicianID))
		assert.Equal(t, job.Completed, j.Status())
	})

	t.Run("requeue returns matching job to the queue", func(t *testing.T) {
		j := newTestJob(t)

		require.NoError(t, j.StartMatching())
		require.NoError(t, j.Requeue())
		assert.Equal(t, job.Requested, j.Status())
	})

	t.Run("assign requires Matching status", func(t *testing.T) {
		j := newTestJob(t)

		err := j.Assign(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrInvalidTransition)
		assert.Nil(t, j.Technician(), "failed assignment must not record a technician")
	})

	t.Run("only the assigned technician may start", func(t *testing.T) {
		j := newTestJob(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, j.StartMatching())
		require.NoError(t, j.Assign(technicianID))

		err := j.Start(kernel.NewUUID())
		require.Error(t, err)
		assert.Equal(t, job.Assigned, j.Status())

		require.NoError(t, j.Start(technicianID))
	})

	t.Run("only the assigned technician may complete", func(t *testing.T) {
		j := newTestJob(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, j.StartMatching())
		require.NoError(t, j.Assign(technicianID))
		require.NoError(t, j.Start(technicianID))

		err := j.Complete(kernel.NewUUID())
		require.Error(t, err)
		assert.Equal(t, job.InProgress, j.Status())
	})

	t.Run("complete requires InProgress", func(t *testing.T) {
		j := newTestJob(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, j.StartMatching())
		require.NoError(t, j.Assign(technicianID))

		err := j.Complete(technicianID)
		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestJob_Cancel(t *testing.T) {
	t.Run("cancellable from every non-terminal status", func(t *testing.T) {
		technicianID := kernel.NewUUID()

		prepare := map[string]func(t *testing.T) *job.Job{
			"Requested": func(t *testing.T) *job.Job {
				return newTestJob(t)
			},
			"Matching": func(t *testing.T) *job.Job {
				j := newTestJob(t)
				require.NoError(t, j.StartMatching())
				return j
			},
			"Assigned": func(t *testing.T) *job.Job {
				j := newTestJob(t)
				require.NoError(t, j.StartMatching())
				require.NoError(t, j.Assign(technicianID))
				return j
			},
			"InProgress": func(t *testing.T) *job.Job {
				j := newTestJob(t)
				require.NoError(t, j.StartMatching())
				require.NoError(t, j.Assign(technicianID))
				require.NoError(t, j.Start(technicianID))
				return j
			},
		}

		for name, build := range prepare {
			t.Run(name, func(t *testing.T) {
				j := build(t)
				require.NoError(t, j.Cancel())
				assert.Equal(t, job.Cancelled, j.Status())
			})
		}
	})

	t.Run("cancelled job keeps its technician reference", func(t *testing.T) {
		j := newTestJob(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, j.StartMatching())
		require.NoError(t, j.Assign(technicianID))
		require.NoError(t, j.Cancel())

		require.NotNil(t, j.Technician())
		assert.Equal(t, technicianID, *j.Technician())
	})

	t.Run("terminal statuses cannot be cancelled", func(t *testing.T) {
		j := newTestJob(t)
		technicianID := kernel.NewUUID()

		require.NoError(t, j.StartMatching())
		require.NoError(t, j.Assign(technicianID))
		require.NoError(t, j.Start(technicianID))
		require.NoError(t, j.Complete(technicianID))

		err := j.Cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, job.ErrInvalidTransition)

		err = j.Cancel()
		require.Error(t, err, "cancelling twice is also illegal")
	})
}

func TestRestoreJob(t *testing.T) {
	t.Run("should restore assigned job with technician", func(t *testing.T) {
		technicianID := kernel.NewUUID()

		j, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil,
			job.Assigned, &technicianID)

		require.NoError(t, err)
		assert.Equal(t, job.Assigned, j.Status())
		assert.Equal(t, technicianID, *j.Technician())
	})

	t.Run("should reject assigned job without technician", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil,
			job.Assigned, nil)

		require.Error(t, err)
	})

	t.Run("should reject matching job with technician", func(t *testing.T) {
		technicianID := kernel.NewUUID()

		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil,
			job.Matching, &technicianID)

		require.Error(t, err)
	})

	t.Run("should restore cancelled job with or without technician", func(t *testing.T) {
		technicianID := kernel.NewUUID()

		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil,
			job.Cancelled, &technicianID)
		require.NoError(t, err)

		_, err = job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil,
			job.Cancelled, nil)
		require.NoError(t, err)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"description", "somewhere", nil,
			job.Unknown, nil)

		require.Error(t, err)
	})
}
