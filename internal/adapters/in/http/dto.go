package http

import "time"

// Request and response bodies for the public API. Kept separate from the
// domain model so the wire format can evolve independently.

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateJobRequest is the body of POST /api/v1/jobs.
type CreateJobRequest struct {
	CustomerID          string `json:"customer_id"`
	ServiceID           string `json:"service_id"`
	Description         string `json:"description"`
	Location            string `json:"location"`
	EstimatedPriceCents *int64 `json:"estimated_price_cents,omitempty"`
}

// CreateJobResponse returns the id of the newly created job.
type CreateJobResponse struct {
	ID string `json:"id"`
}

// JobResponse is the read model for a single job.
type JobResponse struct {
	ID                  string  `json:"id"`
	CustomerID          string  `json:"customer_id"`
	TechnicianID        *string `json:"technician_id,omitempty"`
	ServiceID           string  `json:"service_id"`
	Status              string  `json:"status"`
	Description         string  `json:"description"`
	Location            string  `json:"location"`
	EstimatedPriceCents *int64  `json:"estimated_price_cents,omitempty"`
}

// TechnicianActionRequest carries the acting technician's id for offer and
// job lifecycle endpoints.
type TechnicianActionRequest struct {
	TechnicianID string `json:"technician_id"`
}

// CreateTechnicianRequest is the body of POST /api/v1/technicians.
type CreateTechnicianRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// CreateTechnicianResponse returns the id of the newly created technician.
type CreateTechnicianResponse struct {
	ID string `json:"id"`
}

// OfferResponse is one entry in a technician's offer inbox.
type OfferResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SubmitReviewRequest is the body of POST /api/v1/reviews.
type SubmitReviewRequest struct {
	JobID      string `json:"job_id"`
	ReviewerID string `json:"reviewer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}
