package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand captures a cancellation request for a job by either party
// or an admin. Cancellation is legal from any non-terminal status; Cancelled
// is terminal.
type CancelJobCommand struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a validated command for cancelling a job.
func NewCancelJobCommand(jobID kernel.UUID) (CancelJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return CancelJobCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}

	return CancelJobCommand{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the id of the job being cancelled.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}
