// Package jobrepo provides data transfer objects and mapping functions for job
// persistence. This package implements the repository pattern for the job
// domain aggregate, handling the conversion between domain entities and
// database representations.
package jobrepo

import (
	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Indexed by status so the dispatcher's per-cycle scans stay cheap.
type JobDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index"`
	TechnicianID        *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID           uuid.UUID  `gorm:"type:uuid"`
	Status              int        `gorm:"index"`
	Description         string
	Location            string
	EstimatedPriceCents *int64
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
// Maps all job attributes including optional technician assignment.
func fromDomain(j *job.Job) JobDTO {
	var technicianID *uuid.UUID
	if id := j.Technician(); id != nil {
		raw := id.Bytes()
		technicianID = &raw
	}

	return JobDTO{
		ID:                  j.ID().Bytes(),
		CustomerID:          j.CustomerID().Bytes(),
		TechnicianID:        technicianID,
		ServiceID:           j.ServiceID().Bytes(),
		Status:              int(j.Status()),
		Description:         j.Description(),
		Location:            j.Location(),
		EstimatedPriceCents: j.EstimatedPriceCents(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including status and technician
// assignment using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var technicianID *kernel.UUID
	if dto.TechnicianID != nil {
		tID, technicianErr := kernel.UUIDFromBytes((*dto.TechnicianID)[:])
		if technicianErr != nil {
			return nil, technicianErr
		}

		technicianID = &tID
	}

	return job.RestoreJob(
		id,
		customerID,
		serviceID,
		dto.Description,
		dto.Location,
		dto.EstimatedPriceCents,
		job.Status(dto.Status),
		technicianID,
	)
}
