package paymentrepo

import (
	"context"
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/payment"
	"fixmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
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

// GetByJob retrieves the payment booked for a job.
func (r *GormPaymentRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*payment.Payment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
