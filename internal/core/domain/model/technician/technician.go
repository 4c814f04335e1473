package technician

import (
	"errors"
	"fmt"

	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"
)

const (
	// MinRating is the lowest rating a review may award.
	MinRating = 1
	// MaxRating is the highest rating a review may award.
	MaxRating = 5
)

// ErrTechnicianIsNotConstructed is returned when a Technician instance was not
// created through the NewTechnician or RestoreTechnician factory functions.
var ErrTechnicianIsNotConstructed = errors.New(
	"Technician must be created via NewTechnician or RestoreTechnician constructor")

// Technician represents a service provider's profile. A technician is linked
// one-to-one with a user account and becomes eligible for job offers only
// after an admin flips the verification flag.
//
// The running average rating is maintained incrementally:
//
//	newAverage = (oldAverage*oldCount + newRating) / (oldCount + 1)
//
// so adding a review never requires re-reading past reviews.
type Technician struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string

	isVerified    bool
	averageRating float64
	totalReviews  int

	isConstructed bool
}

// NewTechnician creates an unverified Technician with no reviews.
func NewTechnician(id, userID kernel.UUID, name string) (*Technician, error) {
	t := &Technician{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setUserID(userID),
		t.setName(name),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTechnician reconstructs a Technician from persisted state.
func RestoreTechnician(
	id, userID kernel.UUID,
	name string,
	isVerified bool,
	averageRating float64,
	totalReviews int,
) (*Technician, error) {
	t := &Technician{
		isVerified:    isVerified,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setUserID(userID),
		t.setName(name),
	); err != nil {
		return nil, err
	}

	if totalReviews < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalReviews",
			fmt.Errorf("%d is negative", totalReviews))
	}
	if averageRating < 0 || averageRating > MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("averageRating", averageRating, 0, MaxRating)
	}

	t.averageRating = averageRating
	t.totalReviews = totalReviews
	return t, nil
}

// Validate ensures the Technician instance was properly constructed through a
// factory function.
func (t *Technician) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTechnicianIsNotConstructed
	}
	return nil
}

// ID returns the technician's unique identifier.
func (t *Technician) ID() kernel.UUID {
	return t.id
}

// UserID returns the identifier of the linked user account.
func (t *Technician) UserID() kernel.UUID {
	return t.userID
}

// Name returns the technician's display name.
func (t *Technician) Name() string {
	return t.name
}

// IsVerified reports whether an admin has verified the technician.
// Only verified technicians are eligible for new offers.
func (t *Technician) IsVerified() bool {
	return t.isVerified
}

// AverageRating returns the running average review rating.
func (t *Technician) AverageRating() float64 {
	return t.averageRating
}

// TotalReviews returns the number of reviews received.
func (t *Technician) TotalReviews() int {
	return t.totalReviews
}

// Verify marks the technician as verified. Idempotent.
func (t *Technician) Verify() {
	t.isVerified = true
}

// AddRating folds a new review rating into the running average.
func (t *Technician) AddRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	newTotal := t.totalReviews + 1
	t.averageRating = (t.averageRating*float64(t.totalReviews) + float64(rating)) / float64(newTotal)
	t.totalReviews = newTotal
	return nil
}

func (t *Technician) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Technician) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	t.userID = id
	return nil
}

func (t *Technician) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}
