// Package technicianrepo provides data transfer objects and mapping functions
// for technician persistence.
package technicianrepo

import (
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"

	"github.com/google/uuid"
)

// TechnicianDTO represents the database structure for persisting technician
// aggregates. The verified flag is indexed because candidate selection only
// ever reads verified technicians.
type TechnicianDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	IsVerified    bool `gorm:"index"`
	AverageRating float64
	TotalReviews  int
}

// TableName specifies the database table name for technician entities.
// Overrides GORM's default naming convention to use "technicians".
func (TechnicianDTO) TableName() string {
	return "technicians"
}

// fromDomain converts a technician domain aggregate to its database
// representation.
func fromDomain(t *technician.Technician) TechnicianDTO {
	return TechnicianDTO{
		ID:            t.ID().Bytes(),
		UserID:        t.UserID().Bytes(),
		Name:          t.Name(),
		IsVerified:    t.IsVerified(),
		AverageRating: t.AverageRating(),
		TotalReviews:  t.TotalReviews(),
	}
}

// toDomain converts a database DTO to a technician domain aggregate using
// RestoreTechnician.
func toDomain(dto TechnicianDTO) (*technician.Technician, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return technician.RestoreTechnician(
		id,
		userID,
		dto.Name,
		dto.IsVerified,
		dto.AverageRating,
		dto.TotalReviews,
	)
}
