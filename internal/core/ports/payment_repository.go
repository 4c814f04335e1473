package ports

import (
	"context"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record. A job has at most one payment.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByJob retrieves the payment booked for a job.
	// Returns errs.ObjectNotFoundError when the job has no payment.
	GetByJob(ctx context.Context, jobID kernel.UUID) (*payment.Payment, error)
}
