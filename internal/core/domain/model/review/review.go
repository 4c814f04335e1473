// Package review provides customer feedback records for completed jobs.
// A job carries at most one review, written by the customer who requested it;
// each review feeds the technician's running average rating.
package review

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"
	"fixmarket/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through the NewReview or RestoreReview factory functions.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview constructor")

// Review is a customer's rating of a completed job, attributed to the
// technician who performed it.
type Review struct {
	id           kernel.UUID
	jobID        kernel.UUID
	reviewerID   kernel.UUID
	technicianID kernel.UUID

	rating  int
	comment string

	isConstructed bool
}

// NewReview creates a Review with a rating in [technician.MinRating, technician.MaxRating].
func NewReview(id, jobID, reviewerID, technicianID kernel.UUID, rating int, comment string) (*Review, error) {
	r := &Review{
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setJobID(jobID),
		r.setReviewerID(reviewerID),
		r.setTechnicianID(technicianID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persisted state.
func RestoreReview(id, jobID, reviewerID, technicianID kernel.UUID, rating int, comment string) (*Review, error) {
	return NewReview(id, jobID, reviewerID, technicianID, rating, comment)
}

// Validate ensures the Review instance was properly constructed through a
// factory function.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// JobID returns the identifier of the reviewed job.
func (r *Review) JobID() kernel.UUID {
	return r.jobID
}

// ReviewerID returns the identifier of the customer who wrote the review.
func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// TechnicianID returns the identifier of the rated technician.
func (r *Review) TechnicianID() kernel.UUID {
	return r.technicianID
}

// Rating returns the awarded rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	r.jobID = id
	return nil
}

func (r *Review) setReviewerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewerID", err)
	}
	r.reviewerID = id
	return nil
}

func (r *Review) setTechnicianID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}
	r.technicianID = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < technician.MinRating || rating > technician.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, technician.MinRating, technician.MaxRating)
	}
	r.rating = rating
	return nil
}
