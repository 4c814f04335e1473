package queries_test

import (
	"context"
	"testing"

	"fixmarket/internal/adapters/out/postgres/jobrepo"
	"fixmarket/internal/core/application/usecases/queries"
	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repositories' tracker interface for
// test purposes. Query tests never need change tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetJobByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetJobByIDQueryHandler
}

func (suite *GetJobByIDQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobrepo.JobDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetJobByIDQueryHandler(db)
}

func (suite *GetJobByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetJobByIDQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs").Error
	suite.Require().NoError(err)
}

func (suite *GetJobByIDQueryHandlerTestSuite) saveJob(j *job.Job) {
	repo := jobrepo.NewGormJobRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), j)
	suite.Require().NoError(err)
}

func (suite *GetJobByIDQueryHandlerTestSuite) TestHandle_RequestedJob() {
	price := int64(12500)
	testJob, err := job.NewJob(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"replace faucet", "21 River Rd", &price)
	suite.Require().NoError(err)
	suite.saveJob(testJob)

	query, err := queries.NewGetJobByIDQuery(testJob.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testJob.ID(), result.ID)
	suite.Equal(testJob.CustomerID(), result.CustomerID)
	suite.Equal(testJob.ServiceID(), result.ServiceID)
	suite.Equal("Requested", result.Status)
	suite.Equal("replace faucet", result.Description)
	suite.Equal("21 River Rd", result.Location)
	suite.Nil(result.TechnicianID)
	suite.Require().NotNil(result.EstimatedPriceCents)
	suite.Equal(price, *result.EstimatedPriceCents)
}

func (suite *GetJobByIDQueryHandlerTestSuite) TestHandle_AssignedJobCarriesTechnician() {
	technicianID := kernel.NewUUID()
	testJob, err := job.NewJob(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"replace faucet", "21 River Rd", nil)
	suite.Require().NoError(err)
	suite.Require().NoError(testJob.StartMatching())
	suite.Require().NoError(testJob.Assign(technicianID))
	suite.saveJob(testJob)

	query, err := queries.NewGetJobByIDQuery(testJob.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Assigned", result.Status)
	suite.Require().NotNil(result.TechnicianID)
	suite.Equal(technicianID, *result.TechnicianID)
	suite.Nil(result.EstimatedPriceCents)
}

func (suite *GetJobByIDQueryHandlerTestSuite) TestHandle_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetJobByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetJobByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetJobByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetJobByIDQuery constructor")
}

func TestGetJobByIDQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetJobByIDQueryHandlerTestSuite))
}
