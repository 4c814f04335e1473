package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand captures a technician's acceptance of a pending job offer.
// Acceptance and job assignment are one atomic unit: either the offer becomes
// Accepted and the job Assigned to this technician, or neither changes.
type AcceptOfferCommand struct {
	offerID      kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a validated command for offer acceptance.
func NewAcceptOfferCommand(offerID, technicianID kernel.UUID) (AcceptOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return AcceptOfferCommand{}, errs.NewValueIsRequiredErrorWithCause("offerID", err)
	}
	if err := technicianID.Validate(); err != nil {
		return AcceptOfferCommand{}, errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}

	return AcceptOfferCommand{
		offerID:      offerID,
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// OfferID returns the id of the offer being accepted.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// TechnicianID returns the id of the accepting technician.
func (c AcceptOfferCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}
