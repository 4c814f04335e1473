// Package payment provides booking records for completed jobs. Settlement
// with a real payment processor happens outside this system; these aggregates
// only capture what is owed to whom.
package payment

import (
	"errors"
	"fmt"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
)

// PlatformFeePercent is the marketplace's cut of every completed job.
const PlatformFeePercent = 10

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Status represents the settlement state of a payment record.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Pending is the initial status of a freshly booked payment.
	Pending
	// Completed indicates the payment settled.
	Completed
	// Failed indicates settlement failed.
	Failed
	// Refunded indicates the payment was returned to the customer.
	Refunded
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	case Refunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status value is one of the defined settlement states.
func (s Status) Validate() error {
	switch s {
	case Pending, Completed, Failed, Refunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
}

// Payment records the money split for one completed job. Amounts are kept in
// integer cents; the platform fee is truncated toward zero and the technician
// receives the exact remainder, so the two parts always sum to the amount.
type Payment struct {
	id    kernel.UUID
	jobID kernel.UUID

	amountCents             int64
	platformFeeCents        int64
	technicianEarningsCents int64

	status Status

	isConstructed bool
}

// NewPayment books a Pending payment for a job, splitting amountCents between
// the platform fee and the technician's earnings.
func NewPayment(id, jobID kernel.UUID, amountCents int64) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := jobID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if amountCents < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amountCents",
			fmt.Errorf("%d is negative", amountCents))
	}

	fee := amountCents * PlatformFeePercent / 100

	return &Payment{
		id:                      id,
		jobID:                   jobID,
		amountCents:             amountCents,
		platformFeeCents:        fee,
		technicianEarningsCents: amountCents - fee,
		status:                  Pending,
		isConstructed:           true,
	}, nil
}

// RestorePayment reconstructs a Payment from persisted state.
func RestorePayment(
	id, jobID kernel.UUID,
	amountCents, platformFeeCents, technicianEarningsCents int64,
	status Status,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := jobID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if platformFeeCents+technicianEarningsCents != amountCents {
		return nil, errs.NewValueIsInvalidErrorWithCause("amountCents",
			fmt.Errorf("fee %d and earnings %d do not sum to %d",
				platformFeeCents, technicianEarningsCents, amountCents))
	}

	return &Payment{
		id:                      id,
		jobID:                   jobID,
		amountCents:             amountCents,
		platformFeeCents:        platformFeeCents,
		technicianEarningsCents: technicianEarningsCents,
		status:                  status,
		isConstructed:           true,
	}, nil
}

// Validate ensures the Payment instance was properly constructed through a
// factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// JobID returns the identifier of the completed job being paid for.
func (p *Payment) JobID() kernel.UUID {
	return p.jobID
}

// AmountCents returns the total charged amount in cents.
func (p *Payment) AmountCents() int64 {
	return p.amountCents
}

// PlatformFeeCents returns the marketplace's cut in cents.
func (p *Payment) PlatformFeeCents() int64 {
	return p.platformFeeCents
}

// TechnicianEarningsCents returns the technician's share in cents.
func (p *Payment) TechnicianEarningsCents() int64 {
	return p.technicianEarningsCents
}

// Status returns the settlement status.
func (p *Payment) Status() Status {
	return p.status
}
