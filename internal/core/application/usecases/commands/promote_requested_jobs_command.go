package commands

import (
	"errors"

	"fixmarket/internal/pkg/guard"
)

var ErrPromoteRequestedJobsCommandIsNotConstructed = errors.New(
	"PromoteRequestedJobsCommand must be created via NewPromoteRequestedJobsCommand constructor",
)

// PromoteRequestedJobsCommand triggers the dispatcher's promotion pass:
// every job in Requested status is moved to Matching, unconditionally.
// This is a parameterless command issued once per dispatcher cycle, always
// before the matching pass.
type PromoteRequestedJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewPromoteRequestedJobsCommand creates a new command to trigger the promotion pass.
func NewPromoteRequestedJobsCommand() PromoteRequestedJobsCommand {
	return PromoteRequestedJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PromoteRequestedJobsCommand) Validate() error {
	return c.guard.Validate(ErrPromoteRequestedJobsCommandIsNotConstructed)
}
