package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrVerifyTechnicianCommandIsNotConstructed = errors.New(
	"VerifyTechnicianCommand must be created via NewVerifyTechnicianCommand constructor",
)

// VerifyTechnicianCommand captures an admin verifying a technician profile,
// making the technician eligible for job offers. Verification is idempotent.
type VerifyTechnicianCommand struct {
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyTechnicianCommand creates a validated command for technician verification.
func NewVerifyTechnicianCommand(technicianID kernel.UUID) (VerifyTechnicianCommand, error) {
	if err := technicianID.Validate(); err != nil {
		return VerifyTechnicianCommand{}, errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}

	return VerifyTechnicianCommand{
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TechnicianID returns the id of the technician being verified.
func (c VerifyTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Validate ensures the command was created through the constructor.
func (c VerifyTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrVerifyTechnicianCommandIsNotConstructed)
}
