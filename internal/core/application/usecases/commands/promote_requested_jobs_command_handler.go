package commands

import (
	"context"

	"fixmarket/internal/core/domain/model/job"
)

// PromoteRequestedJobsCommandHandler runs the dispatcher's promotion pass.
// All Requested jobs are transitioned to Matching inside one transaction;
// there is no eligibility filter at this stage.
type PromoteRequestedJobsCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewPromoteRequestedJobsCommandHandler creates a handler for the promotion pass.
func NewPromoteRequestedJobsCommandHandler(uowFactory JobUoWFactory) PromoteRequestedJobsCommandHandler {
	return PromoteRequestedJobsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle promotes every Requested job to Matching.
// The job set is re-read from the store on every call; the dispatcher holds
// no cross-cycle state about which jobs it has seen.
func (h PromoteRequestedJobsCommandHandler) Handle(ctx context.Context, command PromoteRequestedJobsCommand) error {
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

	requested, err := jobRepo.GetAllInStatus(ctx, job.Requested)
	if err != nil {
		return err
	}

	for _, j := range requested {
		if err = j.StartMatching(); err != nil {
			return err
		}
		if err = jobRepo.Update(ctx, j); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
