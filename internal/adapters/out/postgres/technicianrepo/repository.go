package technicianrepo

import (
	"context"
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"
	"fixmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianRepository implements TechnicianRepository using GORM.
type GormTechnicianRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB, tracker aggregateTracker) *GormTechnicianRepository {
	return &GormTechnicianRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new technician to the database.
func (r *GormTechnicianRepository) Add(ctx context.Context, aggregate *technician.Technician) error {
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

// Update saves an existing technician to the database.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TechnicianDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a technician by ID.
func (r *GormTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllVerified retrieves every verified technician, best rated first with
// ascending id as the tie-break.
func (r *GormTechnicianRepository) GetAllVerified(ctx context.Context) ([]*technician.Technician, error) {
	var dtos []TechnicianDTO
	err := r.db.WithContext(ctx).
		Where("is_verified = ?", true).
		Order("average_rating DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	technicians := make([]*technician.Technician, 0, len(dtos))
	for _, dto := range dtos {
		t, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		technicians = append(technicians, t)
	}

	return technicians, nil
}
