// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such job exists.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate retrieves a job aggregate and locks its row for the rest of
	// the current transaction. Callers that recheck the job's status before
	// writing (offer acceptance, the dispatcher's matching pass) must read
	// through this method so rival transactions serialize on the row instead
	// of both passing the recheck against a stale snapshot.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllInStatus retrieves every job currently in the given status.
	// The dispatcher scans Requested and Matching jobs through this method;
	// the store is the sole source of truth, so each cycle re-reads the full
	// set rather than carrying state between cycles.
	GetAllInStatus(ctx context.Context, status job.Status) ([]*job.Job, error)
}
