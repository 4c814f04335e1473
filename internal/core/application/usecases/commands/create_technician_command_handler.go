package commands

import (
	"context"

	"fixmarket/internal/core/domain/model/technician"
)

// CreateTechnicianCommandHandler persists new technician profiles.
type CreateTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

// NewCreateTechnicianCommandHandler creates a handler for technician registration.
func NewCreateTechnicianCommandHandler(uowFactory TechnicianUoWFactory) CreateTechnicianCommandHandler {
	return CreateTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the technician aggregate, unverified and unrated, and
// persists it in a single transaction.
func (h CreateTechnicianCommandHandler) Handle(ctx context.Context, command CreateTechnicianCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	t, err := technician.NewTechnician(command.TechnicianID(), command.UserID(), command.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TechnicianRepository().Add(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
