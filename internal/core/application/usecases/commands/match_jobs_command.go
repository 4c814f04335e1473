package commands

import (
	"errors"

	"fixmarket/internal/pkg/guard"
)

var ErrMatchJobsCommandIsNotConstructed = errors.New(
	"MatchJobsCommand must be created via NewMatchJobsCommand constructor",
)

// MatchJobsCommand triggers the dispatcher's matching pass over every job in
// Matching status: stale offers are expired and a new offer is created for the
// highest-rated verified technician who has not yet been offered the job.
// This is a parameterless command issued once per dispatcher cycle, always
// after the promotion pass.
type MatchJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewMatchJobsCommand creates a new command to trigger the matching pass.
func NewMatchJobsCommand() MatchJobsCommand {
	return MatchJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c MatchJobsCommand) Validate() error {
	return c.guard.Validate(ErrMatchJobsCommandIsNotConstructed)
}
