// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence. Offers are append-mostly: the dispatcher creates them and
// only their status ever changes afterwards.
package offerrepo

import (
	"time"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer aggregates.
// Indexed by job and technician for the dispatcher's lookups and the
// technician inbox respectively.
type OfferDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID        uuid.UUID `gorm:"type:uuid;index"`
	TechnicianID uuid.UUID `gorm:"type:uuid;index"`
	Status       int
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// TableName specifies the database table name for offer entities.
// Overrides GORM's default naming convention to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts an offer domain aggregate to its database representation.
func fromDomain(o *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:           o.ID().Bytes(),
		JobID:        o.JobID().Bytes(),
		TechnicianID: o.TechnicianID().Bytes(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
		ExpiresAt:    o.ExpiresAt(),
	}
}

// toDomain converts a database DTO to an offer domain aggregate using
// RestoreOffer.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	technicianID, err := kernel.UUIDFromBytes(dto.TechnicianID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(
		id,
		jobID,
		technicianID,
		offer.Status(dto.Status),
		dto.CreatedAt,
		dto.ExpiresAt,
	)
}
