package ports

import (
	"context"
	"time"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for job offer aggregates.
type OfferRepository interface {
	// Add persists a new offer aggregate to storage.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer aggregate.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such offer exists.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetForUpdate retrieves an offer aggregate and locks its row for the rest
	// of the current transaction, so concurrent accept and reject attempts on
	// the same offer observe each other's outcome instead of a stale Pending.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetPendingUnexpired retrieves the job's Pending offer whose deadline has
	// not passed at the given instant. At most one such offer exists per job.
	// Returns errs.ObjectNotFoundError when the job has no live offer.
	GetPendingUnexpired(ctx context.Context, jobID kernel.UUID, now time.Time) (*offer.Offer, error)

	// GetPendingExpired retrieves all of the job's Pending offers whose
	// deadline has passed at the given instant, for the stale-offer sweep.
	GetPendingExpired(ctx context.Context, jobID kernel.UUID, now time.Time) ([]*offer.Offer, error)

	// GetPendingForTechnician retrieves a technician's Pending offers across
	// all jobs, newest first.
	GetPendingForTechnician(ctx context.Context, technicianID kernel.UUID) ([]*offer.Offer, error)

	// GetExcludedTechnicianIDs returns the id of every technician who has ever
	// held an offer for the job, regardless of the offer's outcome. A
	// technician is never offered the same job twice.
	GetExcludedTechnicianIDs(ctx context.Context, jobID kernel.UUID) ([]kernel.UUID, error)
}
