package commands

import (
	"context"
)

// VerifyTechnicianCommandHandler flips a technician's verification flag,
// making the technician eligible for offers from the next matching cycle on.
type VerifyTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewVerifyTechnicianCommandHandler creates a handler for technician verification.
func NewVerifyTechnicianCommandHandler(uowFactory TechnicianUoWFactory) VerifyTechnicianCommandHandler {
	return VerifyTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification.
func (h VerifyTechnicianCommandHandler) Handle(ctx context.Context, command VerifyTechnicianCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	technicianRepo := uow.TechnicianRepository()

	t, err := technicianRepo.Get(ctx, command.TechnicianID())
	if err != nil {
		return err
	}

	t.Verify()

	if err = technicianRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
