package offer

import (
	"errors"
	"fmt"
	"time"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not created
	// through the NewOffer or RestoreOffer factory functions.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer constructor")

	// ErrOfferExpired is returned when an offer's time window has passed.
	// Accepting past the deadline both fails with this error and marks the
	// offer Expired, so a late acceptance leaves a consistent record behind.
	ErrOfferExpired = errors.New("offer expired")

	// ErrOfferNotPending is returned when an operation requires a Pending offer
	// but the offer has already been resolved.
	ErrOfferNotPending = errors.New("offer is not pending")
)

// Offer represents a time-limited proposal of a job to a single technician.
//
// Offer maintains these invariants:
//   - Job and technician references are valid and, once created, immutable
//   - The expiry deadline is strictly after the creation time
//   - Status transitions only out of Pending, exactly once
//
// The at-most-one-pending-offer-per-job invariant is enforced one level up,
// by the offer lifecycle operations that consult the store before creating a
// new offer.
type Offer struct {
	id           kernel.UUID
	jobID        kernel.UUID
	technicianID kernel.UUID

	status Status

	createdAt time.Time
	expiresAt time.Time

	isConstructed bool
}

// NewOffer creates a Pending offer for a job addressed to a technician.
// The offer expires at now + ttl; ttl must be positive.
func NewOffer(id, jobID, technicianID kernel.UUID, now time.Time, ttl time.Duration) (*Offer, error) {
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not a positive duration", ttl))
	}

	o := &Offer{
		status:        Pending,
		createdAt:     now,
		expiresAt:     now.Add(ttl),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setJobID(jobID),
		o.setTechnicianID(technicianID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an Offer from persisted state.
func RestoreOffer(
	id, jobID, technicianID kernel.UUID,
	status Status,
	createdAt, expiresAt time.Time,
) (*Offer, error) {
	o := &Offer{
		status:        status,
		createdAt:     createdAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setJobID(jobID),
		o.setTechnicianID(technicianID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if !expiresAt.After(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("expiresAt",
			fmt.Errorf("expiry %s is not after creation %s", expiresAt, createdAt))
	}

	return o, nil
}

// Validate ensures the Offer instance was properly constructed through a
// factory function.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// JobID returns the identifier of the offered job.
func (o *Offer) JobID() kernel.UUID {
	return o.jobID
}

// TechnicianID returns the identifier of the technician the offer is addressed to.
func (o *Offer) TechnicianID() kernel.UUID {
	return o.technicianID
}

// Status returns the current offer status.
func (o *Offer) Status() Status {
	return o.status
}

// CreatedAt returns when the offer was created.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// ExpiresAt returns the offer's expiry deadline.
func (o *Offer) ExpiresAt() time.Time {
	return o.expiresAt
}

// IsExpired reports whether the offer's deadline has passed at the given instant.
func (o *Offer) IsExpired(now time.Time) bool {
	return !now.Before(o.expiresAt)
}

// BelongsTo reports whether the offer is addressed to the given technician.
func (o *Offer) BelongsTo(technicianID kernel.UUID) bool {
	return o.technicianID.IsEqual(technicianID)
}

// Accept resolves a Pending offer as Accepted.
//
// The expiry deadline is re-checked at the moment of acceptance, even when an
// earlier read considered the offer valid: if the deadline has passed the
// offer transitions to Expired instead and ErrOfferExpired is returned. This
// closes the race window between reading an offer and acting on it.
func (o *Offer) Accept(now time.Time) error {
	if o.status != Pending {
		return ErrOfferNotPending
	}

	if o.IsExpired(now) {
		o.status = Expired
		return ErrOfferExpired
	}

	o.status = Accepted
	return nil
}

// Reject resolves a Pending offer as Rejected.
func (o *Offer) Reject() error {
	if o.status != Pending {
		return ErrOfferNotPending
	}

	o.status = Rejected
	return nil
}

// Expire resolves a Pending offer as Expired. The deadline must actually have
// passed; expiring a live offer is a programming error, not a state the
// dispatcher can reach.
func (o *Offer) Expire(now time.Time) error {
	if o.status != Pending {
		return ErrOfferNotPending
	}

	if !o.IsExpired(now) {
		return errs.NewValueIsInvalidErrorWithCause("expiresAt",
			fmt.Errorf("offer %s does not expire until %s", o.id, o.expiresAt))
	}

	o.status = Expired
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("jobID", err)
	}
	o.jobID = id
	return nil
}

func (o *Offer) setTechnicianID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("technicianID", err)
	}
	o.technicianID = id
	return nil
}
