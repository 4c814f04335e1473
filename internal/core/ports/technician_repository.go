package ports

import (
	"context"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"
)

// TechnicianRepository defines the persistence contract for technician aggregates.
type TechnicianRepository interface {
	// Add persists a new technician aggregate to storage.
	Add(ctx context.Context, aggregate *technician.Technician) error

	// Update persists changes to an existing technician aggregate.
	Update(ctx context.Context, aggregate *technician.Technician) error

	// Get retrieves a technician aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such technician exists.
	Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error)

	// GetAllVerified retrieves every verified technician, ordered by average
	// rating descending with ascending id as the tie-break. The ordering keeps
	// offer selection deterministic when ratings are equal.
	GetAllVerified(ctx context.Context) ([]*technician.Technician, error)
}
