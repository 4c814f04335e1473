package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations: the dispatcher
// and interactive handlers never share a transaction and coordinate purely
// through the store's transactional guarantees.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// JobRepository returns a JobRepository bound to the current transaction.
	JobRepository() JobRepository

	// OfferRepository returns an OfferRepository bound to the current transaction.
	OfferRepository() OfferRepository

	// TechnicianRepository returns a TechnicianRepository bound to the current transaction.
	TechnicianRepository() TechnicianRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// ReviewRepository returns a ReviewRepository bound to the current transaction.
	ReviewRepository() ReviewRepository
}
