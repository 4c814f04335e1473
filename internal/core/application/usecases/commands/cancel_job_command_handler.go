package commands

import (
	"context"
)

// CancelJobCommandHandler transitions a job to Cancelled. Attempts to cancel
// a Completed or already-Cancelled job fail with an invalid-transition error;
// a technician reference already on the job is retained for record keeping.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelJobCommandHandler creates a handler for cancelling jobs.
func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation.
func (h CancelJobCommandHandler) Handle(ctx context.Context, command CancelJobCommand) error {
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

	if err = j.Cancel(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
