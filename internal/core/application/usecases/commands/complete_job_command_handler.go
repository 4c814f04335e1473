package commands

import (
	"context"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/payment"
)

// CompleteJobCommandHandler transitions an InProgress job to Completed and
// books the payment for it in the same transaction. The payment amount is the
// job's estimated price (zero when none was quoted); the platform keeps its
// fee and the technician's earnings are recorded explicitly.
type CompleteJobCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCompleteJobCommandHandler creates a handler for completing jobs.
func NewCompleteJobCommandHandler(uowFactory BillingUoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion. The job aggregate enforces both the
// InProgress -> Completed transition and that the caller is the assigned
// technician; Completed is terminal.
func (h CompleteJobCommandHandler) Handle(ctx context.Context, command CompleteJobCommand) error {
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

	j, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = j.Complete(command.TechnicianID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return err
	}

	var amountCents int64
	if price := j.EstimatedPriceCents(); price != nil {
		amountCents = *price
	}

	p, err := payment.NewPayment(kernel.NewUUID(), j.ID(), amountCents)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
