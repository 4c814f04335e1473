// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"fixmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so tests only need to mock what the handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// OfferRepoFactory provides access to the offer repository within a transaction.
	OfferRepoFactory interface {
		OfferRepository() ports.OfferRepository
	}

	// TechnicianRepoFactory provides access to the technician repository within a transaction.
	TechnicianRepoFactory interface {
		TechnicianRepository() ports.TechnicianRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// JobUoW manages transactions for job-only operations.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// TechnicianUoW manages transactions for technician-only operations.
	TechnicianUoW interface {
		TxManager
		TechnicianRepoFactory
	}

	// TechnicianUoWFactory creates new technician unit of work instances.
	TechnicianUoWFactory interface {
		Create() TechnicianUoW
	}

	// OfferUoW manages transactions that resolve offers and update the parent
	// job in the same atomic unit (accept and reject).
	OfferUoW interface {
		TxManager
		JobRepoFactory
		OfferRepoFactory
	}

	// OfferUoWFactory creates new offer unit of work instances.
	OfferUoWFactory interface {
		Create() OfferUoW
	}

	// MatchingUoW manages transactions for the dispatcher's matching pass,
	// which reads jobs and technicians and creates or expires offers.
	MatchingUoW interface {
		TxManager
		JobRepoFactory
		OfferRepoFactory
		TechnicianRepoFactory
	}

	// MatchingUoWFactory creates new matching unit of work instances.
	MatchingUoWFactory interface {
		Create() MatchingUoW
	}

	// BillingUoW manages transactions that complete a job and book its payment
	// as one atomic unit.
	BillingUoW interface {
		TxManager
		JobRepoFactory
		PaymentRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// ReviewUoW manages transactions that store a review and fold its rating
	// into the technician's running average as one atomic unit.
	ReviewUoW interface {
		TxManager
		JobRepoFactory
		TechnicianRepoFactory
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
