// Package offer provides domain entities for the offer/acceptance protocol
// between the matching dispatcher and technicians.
//
// The package includes:
//   - Offer: A time-limited proposal of a job to a single technician
//   - Status: The Pending/Accepted/Rejected/Expired offer lifecycle
//
// Key business rules:
//   - An offer's job and technician references are immutable once created
//   - An offer expires a fixed interval after creation
//   - Acceptance re-checks expiry at the moment of the call; a late acceptance
//     marks the offer Expired instead of Accepted
//   - A job has at most one Pending, unexpired offer at any instant (enforced
//     by the offer lifecycle operations in the application layer)
package offer
