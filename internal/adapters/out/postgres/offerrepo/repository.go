package offerrepo

import (
	"context"
	"errors"
	"time"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
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

// Update saves an existing offer to the database.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an offer by ID with a SELECT ... FOR UPDATE row lock,
// held until the surrounding transaction ends.
func (r *GormOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingUnexpired retrieves the job's live offer: Pending and with its
// deadline still ahead of the given instant.
func (r *GormOfferRepository) GetPendingUnexpired(
	ctx context.Context,
	jobID kernel.UUID,
	now time.Time,
) (*offer.Offer, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	err := r.db.WithContext(ctx).
		First(&dto, "job_id = ? AND status = ? AND expires_at > ?",
			jobID.Bytes(), int(offer.Pending), now).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingExpired retrieves the job's Pending offers whose deadline passed,
// for the dispatcher's stale-offer sweep.
func (r *GormOfferRepository) GetPendingExpired(
	ctx context.Context,
	jobID kernel.UUID,
	now time.Time,
) ([]*offer.Offer, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND status = ? AND expires_at <= ?",
			jobID.Bytes(), int(offer.Pending), now).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPendingForTechnician retrieves a technician's Pending offers across all
// jobs, newest first.
func (r *GormOfferRepository) GetPendingForTechnician(
	ctx context.Context,
	technicianID kernel.UUID,
) ([]*offer.Offer, error) {
	if err := technicianID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Where("technician_id = ? AND status = ?", technicianID.Bytes(), int(offer.Pending)).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetExcludedTechnicianIDs returns the id of every technician who has ever
// held an offer for the job, regardless of the offer's outcome.
func (r *GormOfferRepository) GetExcludedTechnicianIDs(
	ctx context.Context,
	jobID kernel.UUID,
) ([]kernel.UUID, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	err := r.db.WithContext(ctx).
		Select("DISTINCT technician_id").
		Where("job_id = ?", jobID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.TechnicianID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toDomainSlice(dtos []OfferDTO) ([]*offer.Offer, error) {
	offers := make([]*offer.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, nil
}
