package queries

import (
	"context"
	"database/sql"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetJobByIDQueryHandler retrieves a single job from the database.
// Reads the jobs table directly, bypassing the aggregate layer.
type GetJobByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetJobByIDQueryHandler creates a handler for single-job lookups.
// Requires a GORM database connection for query execution.
func NewGetJobByIDQueryHandler(db *gorm.DB) GetJobByIDQueryHandler {
	return GetJobByIDQueryHandler{db: db}
}

// Handle executes the query for a single job.
// Returns errs.ObjectNotFoundError when no job with the given ID exists.
func (h GetJobByIDQueryHandler) Handle(
	ctx context.Context,
	query GetJobByIDQuery,
) (GetJobByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobByIDQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			technician_id,
			service_id,
			status,
			description,
			location,
			estimated_price_cents
		FROM jobs
		WHERE id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return GetJobByIDQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetJobByIDQueryResponse{}, err
		}
		return GetJobByIDQueryResponse{}, errs.NewObjectNotFoundError("jobID", query.JobID())
	}

	jobResp, err := scanJobRow(rows)
	if err != nil {
		return GetJobByIDQueryResponse{}, err
	}

	return jobResp, rows.Err()
}

// scanJobRow reads one jobs-table row into the job read model.
// Shared by the single-job and active-jobs queries, which select
// the same column list.
func scanJobRow(rows *sql.Rows) (GetJobByIDQueryResponse, error) {
	var jobResp GetJobByIDQueryResponse
	var id, customerID, serviceID uuid.UUID
	var technicianID uuid.NullUUID
	var status job.Status

	err := rows.Scan(
		&id,
		&customerID,
		&technicianID,
		&serviceID,
		&status,
		&jobResp.Description,
		&jobResp.Location,
		&jobResp.EstimatedPriceCents,
	)
	if err != nil {
		return GetJobByIDQueryResponse{}, err
	}

	if jobResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetJobByIDQueryResponse{}, err
	}
	if jobResp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetJobByIDQueryResponse{}, err
	}
	if jobResp.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
		return GetJobByIDQueryResponse{}, err
	}
	if technicianID.Valid {
		techID, idErr := kernel.UUIDFromBytes(technicianID.UUID[:])
		if idErr != nil {
			return GetJobByIDQueryResponse{}, idErr
		}
		jobResp.TechnicianID = &techID
	}
	jobResp.Status = status.String()

	return jobResp, nil
}
