package commands_test

import (
	"context"
	"time"

	"fixmarket/internal/core/application/usecases/commands"
	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/core/domain/model/payment"
	"fixmarket/internal/core/domain/model/review"
	"fixmarket/internal/core/domain/model/technician"
	"fixmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository ports and the unit-of-work subsets.
// Handler tests wire these per scenario with mock.InOrder.

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllInStatus(ctx context.Context, status job.Status) ([]*job.Job, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetPendingUnexpired(ctx context.Context, jobID kernel.UUID, now time.Time) (*offer.Offer, error) {
	args := m.Called(ctx, jobID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetPendingExpired(ctx context.Context, jobID kernel.UUID, now time.Time) ([]*offer.Offer, error) {
	args := m.Called(ctx, jobID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetPendingForTechnician(ctx context.Context, technicianID kernel.UUID) ([]*offer.Offer, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetExcludedTechnicianIDs(ctx context.Context, jobID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockTechnicianRepository struct{ mock.Mock }

func (m *MockTechnicianRepository) Add(ctx context.Context, aggregate *technician.Technician) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*technician.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) GetAllVerified(ctx context.Context) ([]*technician.Technician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*technician.Technician), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByJob(ctx context.Context, jobID kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

// MockUoW satisfies every unit-of-work subset the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) TechnicianRepository() ports.TechnicianRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnicianRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockTechnicianUoWFactory struct{ mock.Mock }

func (m *MockTechnicianUoWFactory) Create() commands.TechnicianUoW {
	args := m.Called()
	return args.Get(0).(commands.TechnicianUoW)
}

type MockOfferUoWFactory struct{ mock.Mock }

func (m *MockOfferUoWFactory) Create() commands.OfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OfferUoW)
}

type MockMatchingUoWFactory struct{ mock.Mock }

func (m *MockMatchingUoWFactory) Create() commands.MatchingUoW {
	args := m.Called()
	return args.Get(0).(commands.MatchingUoW)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}
