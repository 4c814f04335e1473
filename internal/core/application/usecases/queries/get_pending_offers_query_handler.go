package queries

import (
	"context"
	"time"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingOffersQueryHandler retrieves a technician's open offers from the
// database. An offer whose deadline already passed is filtered out even if
// the dispatcher has not marked it Expired yet.
type GetPendingOffersQueryHandler struct {
	db *gorm.DB

	// now is the clock used for the expiry cutoff; nil means time.Now.
	now func() time.Time
}

// NewGetPendingOffersQueryHandler creates a handler for offer-inbox queries.
// Requires a GORM database connection for query execution.
func NewGetPendingOffersQueryHandler(db *gorm.DB) GetPendingOffersQueryHandler {
	return GetPendingOffersQueryHandler{db: db}
}

// Handle executes the query to retrieve the technician's pending, unexpired
// offers. Results are sorted by expiry deadline, soonest first.
func (h GetPendingOffersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOffersQuery,
) ([]GetPendingOffersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	if h.now != nil {
		now = h.now()
	}

	offers := make([]GetPendingOffersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			job_id,
			created_at,
			expires_at
		FROM offers
		WHERE technician_id = ?
		  AND status = ?
		  AND expires_at > ?
		ORDER BY expires_at, id
	`, query.TechnicianID().Bytes(), offer.Pending, now).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var offerResp GetPendingOffersQueryResponse
		var id, jobID uuid.UUID

		err = rows.Scan(
			&id,
			&jobID,
			&offerResp.CreatedAt,
			&offerResp.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		if offerResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if offerResp.JobID, err = kernel.UUIDFromBytes(jobID[:]); err != nil {
			return nil, err
		}

		offers = append(offers, offerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
