package commands

import (
	"context"
)

// StartJobCommandHandler transitions an Assigned job to InProgress on the
// assigned technician's request.
type StartJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewStartJobCommandHandler creates a handler for starting jobs.
func NewStartJobCommandHandler(uowFactory JobUoWFactory) StartJobCommandHandler {
	return StartJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start request. The job aggregate enforces both the
// Assigned -> InProgress transition and that the caller is the assigned
// technician.
func (h StartJobCommandHandler) Handle(ctx context.Context, command StartJobCommand) error {
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

	jobRepo := uow.JobRepository()

	j, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = j.Start(command.TechnicianID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
