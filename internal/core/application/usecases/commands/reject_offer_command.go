package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand captures a technician declining a pending job offer.
// The job stays in Matching; the dispatcher offers it to the next technician
// on a later cycle, and the rejecting technician is permanently excluded from
// this job.
type RejectOfferCommand struct {
	offerID      kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a validated command for offer rejection.
func NewRejectOfferCommand(offerID, technicianID kernel.UUID) (RejectOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return RejectOfferCommand{}, errs.NewValueIsRequiredErrorWithCause("offerID", err)
	}
	if err := technicianID.Validate(); err != nil {
		return RejectOfferCommand{}, errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}

	return RejectOfferCommand{
		offerID:      offerID,
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// OfferID returns the id of the offer being declined.
func (c RejectOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// TechnicianID returns the id of the declining technician.
func (c RejectOfferCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Validate ensures the command was created through the constructor.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}
