package queries

import (
	"errors"
	"time"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/guard"
)

var (
	ErrGetPendingOffersQueryIsNotConstructed = errors.New(
		"GetPendingOffersQuery must be created via NewGetPendingOffersQuery constructor",
	)
)

// GetPendingOffersQuery retrieves the pending, unexpired offers addressed to
// one technician. This backs the technician's inbox: each entry is an open
// offer the technician may still accept or reject before its deadline.
//
// Example:
//
//	query, err := NewGetPendingOffersQuery(technicianID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetPendingOffersQueryHandler(db)
//
//	offers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending offers: %w", err)
//	}
type GetPendingOffersQuery struct {
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingOffersQuery creates a query for a technician's open offers.
func NewGetPendingOffersQuery(technicianID kernel.UUID) (GetPendingOffersQuery, error) {
	if err := technicianID.Validate(); err != nil {
		return GetPendingOffersQuery{}, err
	}

	return GetPendingOffersQuery{
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// TechnicianID returns the technician whose offers are requested.
func (q GetPendingOffersQuery) TechnicianID() kernel.UUID {
	return q.technicianID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingOffersQueryIsNotConstructed if validation fails.
func (q GetPendingOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOffersQueryIsNotConstructed)
}

// GetPendingOffersQueryResponse represents one open offer in a technician's
// inbox, including the deadline by which it must be answered.
type GetPendingOffersQueryResponse struct {
	ID        kernel.UUID
	JobID     kernel.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}
