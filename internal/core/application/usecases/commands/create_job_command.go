package commands

import (
	"errors"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
	"fixmarket/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand captures a customer's request for a new job.
// The job is created in Requested status; the matching dispatcher picks it up
// on its next cycle.
//
// Example:
//
//	cmd, err := commands.NewCreateJobCommand(customerID, serviceID, "leaking tap", "12 Main St", nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateJobCommand struct {
	jobID               kernel.UUID
	customerID          kernel.UUID
	serviceID           kernel.UUID
	description         string
	location            string
	estimatedPriceCents *int64

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a validated command for job creation.
// A fresh job id is generated; location must be non-empty and the optional
// estimated price must be non-negative.
func NewCreateJobCommand(
	customerID kernel.UUID,
	serviceID kernel.UUID,
	description string,
	location string,
	estimatedPriceCents *int64,
) (CreateJobCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateJobCommand{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	if err := serviceID.Validate(); err != nil {
		return CreateJobCommand{}, errs.NewValueIsRequiredErrorWithCause("serviceID", err)
	}
	if location == "" {
		return CreateJobCommand{}, errs.NewValueIsRequiredError("location")
	}

	return CreateJobCommand{
		jobID:               kernel.NewUUID(),
		customerID:          customerID,
		serviceID:           serviceID,
		description:         description,
		location:            location,
		estimatedPriceCents: estimatedPriceCents,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// JobID returns the id generated for the job being created.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the requesting customer's id.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceID returns the requested service catalog entry id.
func (c CreateJobCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Description returns the free-text description of the work.
func (c CreateJobCommand) Description() string {
	return c.description
}

// Location returns the free-text work location.
func (c CreateJobCommand) Location() string {
	return c.location
}

// EstimatedPriceCents returns the optional estimated price in cents.
func (c CreateJobCommand) EstimatedPriceCents() *int64 {
	return c.estimatedPriceCents
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}
