package queries

import (
	"context"

	"fixmarket/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetActiveJobsQueryHandler retrieves all non-terminal jobs from the database.
// Filters out completed and cancelled jobs to provide active workload
// visibility for the marketplace dashboard.
type GetActiveJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveJobsQueryHandler creates a handler for active-job queries.
// Requires a GORM database connection for query execution.
func NewGetActiveJobsQueryHandler(db *gorm.DB) GetActiveJobsQueryHandler {
	return GetActiveJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal jobs.
// Results are sorted by job ID for consistent output.
func (h GetActiveJobsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveJobsQuery,
) ([]GetJobByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetJobByIDQueryResponse, 0)

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
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, job.Completed, job.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		jobResp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
