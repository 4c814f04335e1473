// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the marketplace.
//
// The package includes:
//   - TechnicianSelector: picks the technician to receive the next offer for a job
//
// Domain services implement logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
