package reviewrepo

import (
	"context"
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/review"
	"fixmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByJob retrieves the review written for a job.
func (r *GormReviewRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*review.Review, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
