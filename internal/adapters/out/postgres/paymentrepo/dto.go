// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. Payments are written once when a job completes.
package paymentrepo

import (
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment records.
// JobID is unique: a job is billed at most once.
type PaymentDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID                   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AmountCents             int64
	PlatformFeeCents        int64
	TechnicianEarningsCents int64
	Status                  int
}

// TableName specifies the database table name for payment entities.
// Overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database
// representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                      p.ID().Bytes(),
		JobID:                   p.JobID().Bytes(),
		AmountCents:             p.AmountCents(),
		PlatformFeeCents:        p.PlatformFeeCents(),
		TechnicianEarningsCents: p.TechnicianEarningsCents(),
		Status:                  int(p.Status()),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		jobID,
		dto.AmountCents,
		dto.PlatformFeeCents,
		dto.TechnicianEarningsCents,
		payment.Status(dto.Status),
	)
}
