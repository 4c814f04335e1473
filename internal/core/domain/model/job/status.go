package job

import (
	"errors"
	"fmt"

	"fixmarket/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal job status transitions.
// Use errors.Is to detect it; the concrete InvalidTransitionError carries the
// attempted from/to pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an attempted status change that the job
// lifecycle does not allow.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions so jobs always
// follow the correct business workflow.
//
// State transitions:
//
//	Requested ──> Matching ──> Assigned ──> InProgress ──> Completed
//	    ^             │
//	    └─────────────┘
//	 (every non-terminal state may also transition to Cancelled)
//
// Completed and Cancelled are terminal; no further transitions are allowed
// out of them. The transition table below is the single source of truth for
// legality; every mutating operation on a job consults it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when a customer submits a job.
	// Jobs in this status are waiting to be picked up by the matching loop.
	Requested

	// Matching indicates the dispatcher is actively offering the job to
	// technicians. A job may fall back to Requested from here.
	Matching

	// Assigned indicates a technician accepted an offer for the job.
	Assigned

	// InProgress indicates the assigned technician started the work.
	InProgress

	// Completed indicates the work was finished. Terminal.
	Completed

	// Cancelled indicates the job was cancelled by a party or an admin. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Requested:  "Requested",
		Matching:   "Matching",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// transitions returns the allowed target statuses for each source status.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Requested:  {Matching, Cancelled},
		Matching:   {Assigned, Requested, Cancelled},
		Assigned:   {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo checks whether moving to target is legal from the current
// status, without performing the transition.
//
// Returns nil when the transition is allowed, an InvalidTransitionError
// (carrying the from/to pair) otherwise.
func (s Status) CanTransitionTo(target Status) error {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return nil
		}
	}
	return &InvalidTransitionError{From: s, To: target}
}

// TransitionTo validates and performs a transition to target.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) with the attempted from/to pair otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}
	return target, nil
}

// RequiresTechnician reports whether a job in this status must carry a
// technician reference. Assigned, InProgress and Completed jobs always have
// one; Requested and Matching jobs never do. Cancelled jobs may retain the
// technician they had when cancelled, so they are excluded from both rules.
func (s Status) RequiresTechnician() bool {
	return s == Assigned || s == InProgress || s == Completed
}

// ValidateCanHaveTechnician validates consistency between the status and the
// presence of a technician reference.
func (s Status) ValidateCanHaveTechnician(hasTechnician bool) error {
	if s == Cancelled {
		return nil
	}

	if hasTechnician && !s.RequiresTechnician() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a technician", s.String()),
		)
	}

	if !hasTechnician && s.RequiresTechnician() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no technician", s.String()),
		)
	}

	return nil
}
