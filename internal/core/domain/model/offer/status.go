package offer

import (
	"fmt"

	"fixmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a job offer.
//
// State transitions:
//
//	Pending ──> Accepted
//	Pending ──> Rejected
//	Pending ──> Expired
//
// Accepted, Rejected and Expired are terminal. Only the matching dispatcher
// creates Pending offers; acceptance and rejection come from technician
// actions, expiry from the dispatcher's stale-offer pass or from an accept
// attempt that arrives past the deadline.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status; the offer is waiting for the technician
	// to respond before its expiry deadline.
	Pending

	// Accepted indicates the technician accepted the offer in time.
	Accepted

	// Rejected indicates the technician declined the offer.
	Rejected

	// Expired indicates the offer's deadline passed while it was still Pending.
	Expired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
		Expired:  "Expired",
	}
}

// Validate checks if the Status value is one of the defined offer states.
func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Rejected, Expired:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid offer status", s))
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
