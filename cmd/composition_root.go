package cmd

import (
	"fixmarket/internal/adapters/out/postgres"
	"fixmarket/internal/core/application/usecases/commands"
	"fixmarket/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers.
// Each Create* method builds a handler bound to a fresh unit-of-work factory,
// so every command execution gets its own transaction.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	var f commands.BillingUoWFactory = FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteJobCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTechnicianCommandHandler() commands.CreateTechnicianCommandHandler {
	var f commands.TechnicianUoWFactory = FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyTechnicianCommandHandler() commands.VerifyTechnicianCommandHandler {
	var f commands.TechnicianUoWFactory = FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreatePromoteRequestedJobsCommandHandler() commands.PromoteRequestedJobsCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPromoteRequestedJobsCommandHandler(f)
}

func (c *CompositionRoot) CreateMatchJobsCommandHandler() commands.MatchJobsCommandHandler {
	var f commands.MatchingUoWFactory = FuncMatchingUoWFactory(func() commands.MatchingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMatchJobsCommandHandler(f, c.config.OfferTTL, nil)
}

func (c *CompositionRoot) CreateGetJobByIDQueryHandler() queries.GetJobByIDQueryHandler {
	return queries.NewGetJobByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveJobsQueryHandler() queries.GetActiveJobsQueryHandler {
	return queries.NewGetActiveJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOffersQueryHandler() queries.GetPendingOffersQueryHandler {
	return queries.NewGetPendingOffersQueryHandler(c.gormDB)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncTechnicianUoWFactory func() commands.TechnicianUoW

func (f FuncTechnicianUoWFactory) Create() commands.TechnicianUoW {
	return f()
}

type FuncMatchingUoWFactory func() commands.MatchingUoW

func (f FuncMatchingUoWFactory) Create() commands.MatchingUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
