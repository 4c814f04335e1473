package queries

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/guard"
)

var (
	ErrGetJobByIDQueryIsNotConstructed = errors.New(
		"GetJobByIDQuery must be created via NewGetJobByIDQuery constructor",
	)
)

// GetJobByIDQuery retrieves a single job by its identifier.
//
// Example:
//
//	query, err := NewGetJobByIDQuery(jobID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetJobByIDQueryHandler(db)
//
//	job, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get job: %w", err)
//	}
//	fmt.Printf("Job %s is %s\n", job.ID, job.Status)
type GetJobByIDQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobByIDQuery creates a query for a single job.
func NewGetJobByIDQuery(jobID kernel.UUID) (GetJobByIDQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobByIDQuery{}, err
	}

	return GetJobByIDQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the identifier of the requested job.
func (q GetJobByIDQuery) JobID() kernel.UUID {
	return q.jobID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobByIDQueryIsNotConstructed if validation fails.
func (q GetJobByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetJobByIDQueryIsNotConstructed)
}

// GetJobByIDQueryResponse is the read model for a single job.
// TechnicianID and EstimatedPriceCents are nil when not set.
type GetJobByIDQueryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	TechnicianID        *kernel.UUID
	ServiceID           kernel.UUID
	Status              string
	Description         string
	Location            string
	EstimatedPriceCents *int64
}
