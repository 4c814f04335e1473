package commands

import (
	"context"

	"fixmarket/internal/core/domain/model/job"
)

// CreateJobCommandHandler persists new job requests.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	cmd, _ := NewCreateJobCommand(customerID, serviceID, "leaking tap", "12 Main St", nil)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Job creation failed: %v", err)
//	}
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the job aggregate in Requested status and persists it in a
// single transaction.
func (h CreateJobCommandHandler) Handle(ctx context.Context, command CreateJobCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newJob, err := job.NewJob(
		command.JobID(),
		command.CustomerID(),
		command.ServiceID(),
		command.Description(),
		command.Location(),
		command.EstimatedPriceCents(),
	)
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

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
