package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrCreateTechnicianCommandIsNotConstructed = errors.New(
	"CreateTechnicianCommand must be created via NewCreateTechnicianCommand constructor",
)

// CreateTechnicianCommand captures the registration of a technician profile
// for an existing user account. New technicians start unverified and receive
// no offers until an admin verifies them.
type CreateTechnicianCommand struct {
	technicianID kernel.UUID
	userID       kernel.UUID
	name         string

	guard guard.ConstructorGuard
}

// NewCreateTechnicianCommand creates a validated command for technician registration.
// A fresh technician id is generated.
func NewCreateTechnicianCommand(userID kernel.UUID, name string) (CreateTechnicianCommand, error) {
	if err := userID.Validate(); err != nil {
		return CreateTechnicianCommand{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	if name == "" {
		return CreateTechnicianCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateTechnicianCommand{
		technicianID: kernel.NewUUID(),
		userID:       userID,
		name:         name,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TechnicianID returns the id generated for the technician being registered.
func (c CreateTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// UserID returns the id of the linked user account.
func (c CreateTechnicianCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the technician's display name.
func (c CreateTechnicianCommand) Name() string {
	return c.name
}

// Validate ensures the command was created through the constructor.
func (c CreateTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrCreateTechnicianCommandIsNotConstructed)
}
