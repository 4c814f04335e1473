package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand captures a customer reviewing a completed job.
// The rating feeds the technician's running average; a job can only be
// reviewed once, and only by the customer who requested it.
type SubmitReviewCommand struct {
	jobID      kernel.UUID
	reviewerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a validated command for review submission.
// The rating must lie within [technician.MinRating, technician.MaxRating].
func NewSubmitReviewCommand(jobID, reviewerID kernel.UUID, rating int, comment string) (SubmitReviewCommand, error) {
	if err := jobID.Validate(); err != nil {
		return SubmitReviewCommand{}, errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	if err := reviewerID.Validate(); err != nil {
		return SubmitReviewCommand{}, errs.NewValueIsRequiredErrorWithCause("reviewerID", err)
	}
	if rating < technician.MinRating || rating > technician.MaxRating {
		return SubmitReviewCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, technician.MinRating, technician.MaxRating)
	}

	return SubmitReviewCommand{
		jobID:      jobID,
		reviewerID: reviewerID,
		rating:     rating,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the id of the reviewed job.
func (c SubmitReviewCommand) JobID() kernel.UUID {
	return c.jobID
}

// ReviewerID returns the id of the reviewing customer.
func (c SubmitReviewCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Rating returns the awarded rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}
