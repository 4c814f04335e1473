package commands

import "errors"

// Business errors shared between handlers. All of them mean a precondition on
// job or offer state no longer holds, typically because another actor got
// there first. They are surfaced to the caller as rejected requests, never
// retried automatically.
var (
	// ErrJobNotEligible indicates the targeted job or offer is no longer in a
	// state that permits the operation (the race was lost or the work was
	// already handled).
	ErrJobNotEligible = errors.New("job is not eligible for this operation")

	// ErrOfferNotFound indicates no offer matches the given id and technician.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrReviewAlreadyExists indicates the job has already been reviewed.
	ErrReviewAlreadyExists = errors.New("review already exists for this job")
)
