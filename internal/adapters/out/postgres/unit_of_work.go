// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes atomically.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for post-commit processing
//   - Proper isolation between concurrent operations
//   - Repository factory pattern for consistent database connections
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.JobRepository().Add(ctx, job); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - The matching dispatcher and the HTTP handlers coordinate purely
//     through the database's transactional guarantees
package postgres

import (
	"context"

	"fixmarket/internal/adapters/out/postgres/jobrepo"
	"fixmarket/internal/adapters/out/postgres/offerrepo"
	"fixmarket/internal/adapters/out/postgres/paymentrepo"
	"fixmarket/internal/adapters/out/postgres/reviewrepo"
	"fixmarket/internal/adapters/out/postgres/technicianrepo"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// instance with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances; transactions are per instance.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from the unit of
// work execute within the current transaction if one is active, otherwise
// they use the main database connection directly.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction.
// Repeated calls on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository provides access to job persistence within the unit of work.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

// OfferRepository provides access to offer persistence within the unit of work.
func (uow *GormUnitOfWork) OfferRepository() ports.OfferRepository {
	return offerrepo.NewGormOfferRepository(uow.conn(), uow)
}

// TechnicianRepository provides access to technician persistence within the
// unit of work.
func (uow *GormUnitOfWork) TechnicianRepository() ports.TechnicianRepository {
	return technicianrepo.NewGormTechnicianRepository(uow.conn(), uow)
}

// PaymentRepository provides access to payment persistence within the unit of
// work.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// ReviewRepository provides access to review persistence within the unit of
// work.
func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations when aggregates are added or
// updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
