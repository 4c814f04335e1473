package commands

import (
	"context"
	"errors"

	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/pkg/errs"
)

// RejectOfferCommandHandler resolves a technician declining an offer.
// Only the offer changes; the parent job remains in Matching for the
// dispatcher to re-offer.
type RejectOfferCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewRejectOfferCommandHandler creates a handler for offer rejection.
func NewRejectOfferCommandHandler(uowFactory OfferUoWFactory) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection. Rejecting an offer that is no longer
// Pending fails with ErrJobNotEligible.
func (h RejectOfferCommandHandler) Handle(ctx context.Context, command RejectOfferCommand) error {
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

	// Row lock so a concurrent acceptance of the same offer is observed
	// rather than overwritten.
	o, err := offerRepo.GetForUpdate(ctx, command.OfferID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOfferNotFound
	}
	if err != nil {
		return err
	}

	if !o.BelongsTo(command.TechnicianID()) {
		return ErrOfferNotFound
	}

	if err = o.Reject(); err != nil {
		if errors.Is(err, offer.ErrOfferNotPending) {
			return ErrJobNotEligible
		}
		return err
	}

	if err = offerRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
