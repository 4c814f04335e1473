package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrStartJobCommandIsNotConstructed = errors.New(
	"StartJobCommand must be created via NewStartJobCommand constructor",
)

// StartJobCommand captures the assigned technician beginning work on a job,
// moving it from Assigned to InProgress.
type StartJobCommand struct {
	jobID        kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartJobCommand creates a validated command for starting a job.
func NewStartJobCommand(jobID, technicianID kernel.UUID) (StartJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return StartJobCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := technicianID.Validate(); err != nil {
		return StartJobCommand{}, errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}

	return StartJobCommand{
		jobID:        jobID,
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the id of the job being started.
func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// TechnicianID returns the id of the technician starting the work.
func (c StartJobCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// Validate ensures the command was created through the constructor.
func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}
