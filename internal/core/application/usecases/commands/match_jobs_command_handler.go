package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/core/domain/services"
	"fixmarket/internal/pkg/errs"
)

// MatchJobsCommandHandler runs the dispatcher's matching pass.
//
// For every job in Matching status:
//  1. If a pending, unexpired offer exists, the job is skipped; a match is
//     already outstanding.
//  2. Stale pending offers are expired. This happens before selection so a
//     freshly expired offer's technician is already in the exclusion set when
//     the next candidate is picked.
//  3. The exclusion set (every technician who ever held an offer for the job)
//     is computed and the highest-rated verified technician outside it gets a
//     new pending offer.
//  4. If no eligible technician exists, the job simply stays in Matching for
//     the next cycle; that is not an error.
//
// Each job is processed in its own transaction, so one job's failure never
// blocks matching for the others. Per-job errors are collected and returned
// joined; the caller logs them and moves on to the next cycle.
type MatchJobsCommandHandler struct {
	uowFactory MatchingUoWFactory
	selector   services.TechnicianSelector
	offerTTL   time.Duration
	now        func() time.Time
}

// NewMatchJobsCommandHandler creates a handler for the matching pass.
// offerTTL is the fixed offset between an offer's creation and its expiry;
// now supplies the current time and exists so tests can control the clock.
func NewMatchJobsCommandHandler(
	uowFactory MatchingUoWFactory,
	offerTTL time.Duration,
	now func() time.Time,
) MatchJobsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return MatchJobsCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewTechnicianSelector(),
		offerTTL:   offerTTL,
		now:        now,
	}
}

// Handle executes the matching pass over all jobs currently in Matching status.
func (h MatchJobsCommandHandler) Handle(ctx context.Context, command MatchJobsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	jobIDs, err := h.listMatchingJobIDs(ctx)
	if err != nil {
		return err
	}

	var jobErrs []error
	for _, jobID := range jobIDs {
		if err = h.matchJob(ctx, jobID); err != nil {
			jobErrs = append(jobErrs, fmt.Errorf("matching job %s: %w", jobID, err))
		}
	}

	return errors.Join(jobErrs...)
}

// listMatchingJobIDs reads the ids of all jobs in Matching status in a short
// read-only transaction.
func (h MatchJobsCommandHandler) listMatchingJobIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matching, err := uow.JobRepository().GetAllInStatus(ctx, job.Matching)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(matching))
	for _, j := range matching {
		ids = append(ids, j.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// matchJob processes a single Matching job in its own transaction.
func (h MatchJobsCommandHandler) matchJob(ctx context.Context, jobID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	offerRepo := uow.OfferRepository()
	technicianRepo := uow.TechnicianRepository()

	now := h.now()

	// Lock the job row for the duration of the transaction. An in-flight
	// acceptance holds the same lock while it resolves the pending offer, so
	// the stale sweep below can never expire an offer that is concurrently
	// being accepted.
	j, err := jobRepo.GetForUpdate(ctx, jobID)
	if err != nil {
		return err
	}

	// The job may have been accepted or cancelled since the scan.
	if j.Status() != job.Matching {
		return nil
	}

	if _, err = offerRepo.GetPendingUnexpired(ctx, jobID, now); err == nil {
		return nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	stale, err := offerRepo.GetPendingExpired(ctx, jobID, now)
	if err != nil {
		return err
	}
	for _, o := range stale {
		if err = o.Expire(now); err != nil {
			return err
		}
		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	excluded, err := offerRepo.GetExcludedTechnicianIDs(ctx, jobID)
	if err != nil {
		return err
	}

	candidates, err := technicianRepo.GetAllVerified(ctx)
	if err != nil {
		return err
	}

	selected, err := h.selector.Select(candidates, excluded)
	if errors.Is(err, services.ErrNoEligibleTechnician) {
		// No technician available yet; the expiries above still need to be
		// persisted, and the job waits in Matching for the next cycle.
		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	newOffer, err := offer.NewOffer(kernel.NewUUID(), jobID, selected.ID(), now, h.offerTTL)
	if err != nil {
		return err
	}

	if err = offerRepo.Add(ctx, newOffer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
