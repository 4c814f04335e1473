package commands

import (
	"context"
	"errors"
	"time"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/pkg/errs"
)

// AcceptOfferCommandHandler resolves a technician's acceptance of an offer.
//
// This is the sole point of contention between the dispatcher (which expects
// the job to stay Matching and the offer Pending) and technician actions, so
// every precondition is re-validated inside the same transaction that performs
// the mutation, never against a stale read:
//
//   - the offer must exist and belong to the accepting technician
//     (ErrOfferNotFound otherwise)
//   - the offer must still be Pending (ErrJobNotEligible otherwise)
//   - the offer must not be past its deadline; a late acceptance marks the
//     offer Expired, commits that side effect, and fails with
//     offer.ErrOfferExpired
//   - the parent job must still be Matching (ErrJobNotEligible otherwise:
//     another offer may have been accepted, or the job cancelled)
//
// The handler locks the job row before touching the offer, then re-reads the
// offer under that lock. Rival acceptance attempts for the same job therefore
// serialize on the job row: exactly one commits the Matching -> Assigned
// transition, the other re-reads the job after the winner's commit and fails
// its status recheck. The job-then-offer lock order matches the dispatcher's
// matching pass, so the two never deadlock.
type AcceptOfferCommandHandler struct {
	uowFactory OfferUoWFactory
	now        func() time.Time
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
// now supplies the current time for the expiry recheck; pass nil for time.Now.
func NewAcceptOfferCommandHandler(uowFactory OfferUoWFactory, now func() time.Time) AcceptOfferCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle processes the acceptance. On success the offer is Accepted and the
// job Assigned with the technician reference set, atomically.
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, command AcceptOfferCommand) error {
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

	offerRepo := uow.OfferRepository()
	jobRepo := uow.JobRepository()

	// Unlocked read to locate the parent job and verify ownership. The
	// technician reference on an offer never changes, so these checks hold
	// for the locked re-read below too.
	o, err := offerRepo.Get(ctx, command.OfferID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOfferNotFound
	}
	if err != nil {
		return err
	}

	if !o.BelongsTo(command.TechnicianID()) {
		return ErrOfferNotFound
	}

	j, err := jobRepo.GetForUpdate(ctx, o.JobID())
	if err != nil {
		return err
	}

	// Authoritative offer state, read after the job lock is held.
	o, err = offerRepo.GetForUpdate(ctx, command.OfferID())
	if err != nil {
		return err
	}

	acceptErr := o.Accept(h.now())
	if errors.Is(acceptErr, offer.ErrOfferExpired) {
		// Record the expiry even though the acceptance fails.
		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return acceptErr
	}
	if errors.Is(acceptErr, offer.ErrOfferNotPending) {
		return ErrJobNotEligible
	}
	if acceptErr != nil {
		return acceptErr
	}

	if err = offerRepo.Update(ctx, o); err != nil {
		return err
	}

	if j.Status() != job.Matching {
		return ErrJobNotEligible
	}

	if err = j.Assign(command.TechnicianID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
