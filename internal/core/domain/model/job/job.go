package job

import (
	"errors"
	"fmt"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob or RestoreJob factory functions.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// Job represents a customer's service request. It is the aggregate root that
// manages the job lifecycle from creation through matching and assignment to
// completion.
//
// Job maintains these invariants:
//   - Must have valid identifiers for the job itself, the customer, and the service
//   - Must have a non-empty location
//   - Estimated price, when present, is non-negative (stored in cents)
//   - Status transitions follow the Status transition table
//   - A technician reference is present if and only if the status requires one
//     (Cancelled may retain or lack it depending on when the job was cancelled)
//
// The struct uses private fields to ensure encapsulation and enforces its
// invariants through validated methods.
type Job struct {
	id           kernel.UUID
	customerID   kernel.UUID
	technicianID *kernel.UUID
	serviceID    kernel.UUID

	status Status

	description         string
	location            string
	estimatedPriceCents *int64

	isConstructed bool
}

// NewJob creates a Job in Requested status with no technician assigned.
// This is the only way to create a brand-new job; all inputs are validated.
//
// estimatedPriceCents is optional (nil when the customer did not request a
// quote) and must be non-negative when present.
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	description string,
	location string,
	estimatedPriceCents *int64,
) (*Job, error) {
	j := &Job{
		status:        Requested,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setServiceID(serviceID),
		j.setLocation(location),
		j.setEstimatedPriceCents(estimatedPriceCents),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persisted state. Unlike NewJob it
// accepts any status and an optional technician reference, but still verifies
// the status/technician consistency invariant.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	description string,
	location string,
	estimatedPriceCents *int64,
	status Status,
	technicianID *kernel.UUID,
) (*Job, error) {
	j := &Job{
		status:        status,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setServiceID(serviceID),
		j.setLocation(location),
		j.setEstimatedPriceCents(estimatedPriceCents),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if technicianID != nil {
		if err := technicianID.Validate(); err != nil {
			return nil, err
		}
		j.technicianID = technicianID
	}

	if err := status.ValidateCanHaveTechnician(technicianID != nil); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job instance was properly constructed through a factory
// function. Call this when receiving jobs from external packages.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the identifier of the customer who requested the job.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// ServiceID returns the identifier of the requested service catalog entry.
func (j *Job) ServiceID() kernel.UUID {
	return j.serviceID
}

// Technician returns the assigned technician's ID, or nil when unassigned.
func (j *Job) Technician() *kernel.UUID {
	return j.technicianID
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// Description returns the customer's free-text description of the work.
func (j *Job) Description() string {
	return j.description
}

// Location returns the free-text location the work is to be performed at.
func (j *Job) Location() string {
	return j.location
}

// EstimatedPriceCents returns the optional estimated price in cents.
func (j *Job) EstimatedPriceCents() *int64 {
	return j.estimatedPriceCents
}

// StartMatching moves the job from Requested to Matching. Called by the
// dispatcher's promotion pass.
func (j *Job) StartMatching() error {
	newStatus, err := j.status.TransitionTo(Matching)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Requeue moves the job from Matching back to Requested.
func (j *Job) Requeue() error {
	newStatus, err := j.status.TransitionTo(Requested)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Assign moves the job from Matching to Assigned and records the technician.
// The job must currently be in Matching; this is what makes a second
// concurrent acceptance fail once the first one has committed.
func (j *Job) Assign(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.technicianID = &technicianID
	return nil
}

// Start moves the job from Assigned to InProgress.
// Only the assigned technician may start the job.
func (j *Job) Start(technicianID kernel.UUID) error {
	if err := j.validateAssignedTo(technicianID); err != nil {
		return err
	}

	newStatus, err := j.status.TransitionTo(InProgress)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Complete moves the job from InProgress to Completed.
// Only the assigned technician may complete the job. Completed is terminal.
func (j *Job) Complete(technicianID kernel.UUID) error {
	if err := j.validateAssignedTo(technicianID); err != nil {
		return err
	}

	newStatus, err := j.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// Cancel moves the job to Cancelled from any non-terminal status.
// An already-assigned technician reference is retained for record keeping.
func (j *Job) Cancel() error {
	newStatus, err := j.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// validateAssignedTo checks that the job carries a technician reference and
// that it matches the given technician.
func (j *Job) validateAssignedTo(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	if j.technicianID == nil || !j.technicianID.IsEqual(technicianID) {
		return errs.NewValueIsInvalidErrorWithCause("technicianID",
			fmt.Errorf("technician %s is not assigned to job %s", technicianID, j.id))
	}

	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	j.customerID = id
	return nil
}

func (j *Job) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceID", err)
	}
	j.serviceID = id
	return nil
}

func (j *Job) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	j.location = location
	return nil
}

func (j *Job) setEstimatedPriceCents(cents *int64) error {
	if cents != nil && *cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPriceCents",
			fmt.Errorf("%d is negative", *cents))
	}
	j.estimatedPriceCents = cents
	return nil
}
