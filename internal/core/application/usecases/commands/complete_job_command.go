package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand captures the assigned technician finishing a job, moving
// it from InProgress to Completed and booking the payment split.
type CompleteJobCommand struct {
	jobID        kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a validated command for completing a job.
func NewCompleteJobCommand(jobID, technicianID kernel.UUID) (CompleteJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return CompleteJobCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := technicianID.Validate(); err != nil {
		return CompleteJobCommand{}, errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}

	return CompleteJobCommand{
		jobID:        jobID,
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the id of the job being completed.
func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// TechnicianID returns the id of the technician completing the work.
func (c CompleteJobCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Validate ensures the command was created through the constructor.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}
