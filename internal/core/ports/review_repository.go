package ports

import (
	"context"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for job reviews.
type ReviewRepository interface {
	// Add persists a new review. A job carries at most one review.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetByJob retrieves the review written for a job.
	// Returns errs.ObjectNotFoundError when the job has no review.
	GetByJob(ctx context.Context, jobID kernel.UUID) (*review.Review, error)
}
