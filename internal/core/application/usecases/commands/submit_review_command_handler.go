package commands

import (
	"context"
	"errors"
	"fmt"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/review"
	"fixmarket/internal/pkg/errs"
)

// SubmitReviewCommandHandler stores a customer's review of a completed job
// and folds the rating into the technician's running average, atomically.
//
// Preconditions enforced here:
//   - the job exists and is Completed (ErrJobNotEligible otherwise)
//   - the reviewer is the customer who requested the job
//   - the job has not been reviewed before (ErrReviewAlreadyExists otherwise)
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, command SubmitReviewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	technicianRepo := uow.TechnicianRepository()
	reviewRepo := uow.ReviewRepository()

	j, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if j.Status() != job.Completed {
		return ErrJobNotEligible
	}

	if !j.CustomerID().IsEqual(command.ReviewerID()) {
		return errs.NewValueIsInvalidErrorWithCause("reviewerID",
			fmt.Errorf("user %s did not request job %s", command.ReviewerID(), j.ID()))
	}

	if _, err = reviewRepo.GetByJob(ctx, j.ID()); err == nil {
		return ErrReviewAlreadyExists
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	// A Completed job always carries its technician reference.
	technicianID := j.Technician()
	if technicianID == nil {
		return errs.NewValueIsRequiredError("technicianID")
	}

	r, err := review.NewReview(
		kernel.NewUUID(),
		j.ID(),
		command.ReviewerID(),
		*technicianID,
		command.Rating(),
		command.Comment(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return err
	}

	t, err := technicianRepo.Get(ctx, *technicianID)
	if err != nil {
		return err
	}

	if err = t.AddRating(command.Rating()); err != nil {
		return err
	}

	if err = technicianRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
