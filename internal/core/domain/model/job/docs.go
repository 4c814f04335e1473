// Package job provides domain entities and business logic for job requests in
// the marketplace. It implements the Job aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Job: The aggregate root that manages job identity, properties, and lifecycle
//   - Status: A state machine that enforces valid job status transitions
//
// Key business rules:
//   - Jobs must have a valid identifier, customer, service, and location
//   - Status follows the workflow Requested -> Matching -> Assigned -> InProgress -> Completed
//   - A Matching job may fall back to Requested; any non-terminal job may be Cancelled
//   - Completed and Cancelled are terminal states
//   - A technician reference is present exactly when the status requires one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package job
