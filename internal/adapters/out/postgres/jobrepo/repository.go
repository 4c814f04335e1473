package jobrepo

import (
	"context"
	"errors"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
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

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a job by ID with a SELECT ... FOR UPDATE row lock.
// The lock is held until the surrounding transaction ends; with autocommit
// it degrades to a plain read.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all jobs in the given status, ordered by ID so a
// dispatcher cycle walks them deterministically.
func (r *GormJobRepository) GetAllInStatus(ctx context.Context, status job.Status) ([]*job.Job, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(status)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
