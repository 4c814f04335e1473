package queries

import (
	"errors"

	"fixmarket/internal/pkg/guard"
)

var (
	ErrGetActiveJobsQueryIsNotConstructed = errors.New(
		"GetActiveJobsQuery must be created via NewGetActiveJobsQuery constructor",
	)
)

// GetActiveJobsQuery retrieves all jobs that have not reached a terminal
// status. Returns jobs in Requested, Matching, Assigned or InProgress status
// for monitoring and management.
//
// Example:
//
//	query := NewGetActiveJobsQuery()
//	handler := NewGetActiveJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active jobs: %w", err)
//	}
//	fmt.Printf("Found %d active jobs\n", len(jobs))
type GetActiveJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveJobsQuery creates a query to retrieve all non-terminal jobs.
// This is a parameterless query.
func NewGetActiveJobsQuery() GetActiveJobsQuery {
	return GetActiveJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveJobsQueryIsNotConstructed if validation fails.
func (q GetActiveJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveJobsQueryIsNotConstructed)
}
