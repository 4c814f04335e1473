// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence. Reviews are written once per completed job.
package reviewrepo

import (
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// JobID is unique: a job is reviewed at most once.
type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ReviewerID   uuid.UUID `gorm:"type:uuid"`
	TechnicianID uuid.UUID `gorm:"type:uuid;index"`
	Rating       int
	Comment      string
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database
// representation.
func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           r.ID().Bytes(),
		JobID:        r.JobID().Bytes(),
		ReviewerID:   r.ReviewerID().Bytes(),
		TechnicianID: r.TechnicianID().Bytes(),
		Rating:       r.Rating(),
		Comment:      r.Comment(),
	}
}

// toDomain converts a database DTO to a review domain aggregate using
// RestoreReview.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	reviewerID, err := kernel.UUIDFromBytes(dto.ReviewerID[:])
	if err != nil {
		return nil, err
	}

	technicianID, err := kernel.UUIDFromBytes(dto.TechnicianID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, jobID, reviewerID, technicianID, dto.Rating, dto.Comment)
}
