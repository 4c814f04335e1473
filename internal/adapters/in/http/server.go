// Package http exposes the marketplace API over HTTP.
// It coordinates between echo request handlers and application use cases,
// translating domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fixmarket/internal/core/application/usecases/commands"
	"fixmarket/internal/core/application/usecases/queries"
	"fixmarket/internal/core/domain/model/job"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the public HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler        commands.CreateJobCommandHandler
	acceptOfferHandler      commands.AcceptOfferCommandHandler
	rejectOfferHandler      commands.RejectOfferCommandHandler
	startJobHandler         commands.StartJobCommandHandler
	completeJobHandler      commands.CompleteJobCommandHandler
	cancelJobHandler        commands.CancelJobCommandHandler
	createTechnicianHandler commands.CreateTechnicianCommandHandler
	verifyTechnicianHandler commands.VerifyTechnicianCommandHandler
	submitReviewHandler     commands.SubmitReviewCommandHandler

	// Query handlers
	getJobByIDHandler       queries.GetJobByIDQueryHandler
	getActiveJobsHandler    queries.GetActiveJobsQueryHandler
	getPendingOffersHandler queries.GetPendingOffersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	rejectOfferHandler commands.RejectOfferCommandHandler,
	startJobHandler commands.StartJobCommandHandler,
	completeJobHandler commands.CompleteJobCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	createTechnicianHandler commands.CreateTechnicianCommandHandler,
	verifyTechnicianHandler commands.VerifyTechnicianCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	getJobByIDHandler queries.GetJobByIDQueryHandler,
	getActiveJobsHandler queries.GetActiveJobsQueryHandler,
	getPendingOffersHandler queries.GetPendingOffersQueryHandler,
) *Server {
	return &Server{
		createJobHandler:        createJobHandler,
		acceptOfferHandler:      acceptOfferHandler,
		rejectOfferHandler:      rejectOfferHandler,
		startJobHandler:         startJobHandler,
		completeJobHandler:      completeJobHandler,
		cancelJobHandler:        cancelJobHandler,
		createTechnicianHandler: createTechnicianHandler,
		verifyTechnicianHandler: verifyTechnicianHandler,
		submitReviewHandler:     submitReviewHandler,
		getJobByIDHandler:       getJobByIDHandler,
		getActiveJobsHandler:    getActiveJobsHandler,
		getPendingOffersHandler: getPendingOffersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs", s.GetActiveJobs)
	api.GET("/jobs/:id", s.GetJob)
	api.POST("/jobs/:id/start", s.StartJob)
	api.POST("/jobs/:id/complete", s.CompleteJob)
	api.POST("/jobs/:id/cancel", s.CancelJob)

	api.POST("/offers/:id/accept", s.AcceptOffer)
	api.POST("/offers/:id/reject", s.RejectOffer)

	api.POST("/technicians", s.CreateTechnician)
	api.POST("/technicians/:id/verify", s.VerifyTechnician)
	api.GET("/technicians/:id/offers", s.GetTechnicianOffers)

	api.POST("/reviews", s.SubmitReview)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateJob handles POST /api/v1/jobs - submits a new job request.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id")
	}
	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return badRequest(ctx, "Invalid service_id")
	}

	cmd, err := commands.NewCreateJobCommand(
		customerID, serviceID, req.Description, req.Location, req.EstimatedPriceCents)
	if err != nil {
		return badRequest(ctx, "Invalid job data: "+err.Error())
	}

	if err = s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateJobResponse{ID: cmd.JobID().String()})
}

// GetJob handles GET /api/v1/jobs/:id - retrieves one job.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	query, err := queries.NewGetJobByIDQuery(jobID)
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	j, err := s.getJobByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, jobToResponse(j))
}

// GetActiveJobs handles GET /api/v1/jobs - retrieves all non-terminal jobs.
func (s *Server) GetActiveJobs(ctx echo.Context) error {
	query := queries.NewGetActiveJobsQuery()

	jobs, err := s.getActiveJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		response[i] = jobToResponse(j)
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartJob handles POST /api/v1/jobs/:id/start - the assigned technician
// begins the work.
func (s *Server) StartJob(ctx echo.Context) error {
	jobID, technicianID, err := s.jobActionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartJobCommand(jobID, technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteJob handles POST /api/v1/jobs/:id/complete - the assigned
// technician finishes the work; the platform books the payment.
func (s *Server) CompleteJob(ctx echo.Context) error {
	jobID, technicianID, err := s.jobActionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteJobCommand(jobID, technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelJob handles POST /api/v1/jobs/:id/cancel - cancels a non-terminal job.
func (s *Server) CancelJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid job id")
	}

	cmd, err := commands.NewCancelJobCommand(jobID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOffer handles POST /api/v1/offers/:id/accept - the technician takes
// the job. Expiry is re-checked atomically with the assignment.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	offerID, technicianID, err := s.jobActionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID, technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOffer handles POST /api/v1/offers/:id/reject - the technician
// declines the offer, freeing the job for the next candidate.
func (s *Server) RejectOffer(ctx echo.Context) error {
	offerID, technicianID, err := s.jobActionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectOfferCommand(offerID, technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateTechnician handles POST /api/v1/technicians - registers a new,
// unverified technician profile.
func (s *Server) CreateTechnician(ctx echo.Context) error {
	var req CreateTechnicianRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	cmd, err := commands.NewCreateTechnicianCommand(userID, req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid technician data: "+err.Error())
	}

	if err = s.createTechnicianHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateTechnicianResponse{ID: cmd.TechnicianID().String()})
}

// VerifyTechnician handles POST /api/v1/technicians/:id/verify - marks the
// technician as verified, making them eligible for offers.
func (s *Server) VerifyTechnician(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid technician id")
	}

	cmd, err := commands.NewVerifyTechnicianCommand(technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.verifyTechnicianHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTechnicianOffers handles GET /api/v1/technicians/:id/offers - the
// technician's inbox of open offers.
func (s *Server) GetTechnicianOffers(ctx echo.Context) error {
	technicianID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid technician id")
	}

	query, err := queries.NewGetPendingOffersQuery(technicianID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	offers, err := s.getPendingOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OfferResponse, len(offers))
	for i, o := range offers {
		response[i] = OfferResponse{
			ID:        o.ID.String(),
			JobID:     o.JobID.String(),
			CreatedAt: o.CreatedAt,
			ExpiresAt: o.ExpiresAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitReview handles POST /api/v1/reviews - the customer rates the
// technician for a completed job.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var req SubmitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	jobID, err := kernel.UUIDFromString(req.JobID)
	if err != nil {
		return badRequest(ctx, "Invalid job_id")
	}
	reviewerID, err := kernel.UUIDFromString(req.ReviewerID)
	if err != nil {
		return badRequest(ctx, "Invalid reviewer_id")
	}

	cmd, err := commands.NewSubmitReviewCommand(jobID, reviewerID, req.Rating, req.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if err = s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// jobActionIDs extracts the path id and the acting technician's id from the
// request for job and offer lifecycle endpoints. The returned error is a
// parse failure the caller should map to 400.
func (s *Server) jobActionIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid id")
	}

	var req TechnicianActionRequest
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid request body")
	}

	technicianID, err := kernel.UUIDFromString(req.TechnicianID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid technician_id")
	}

	return id, technicianID, nil
}

func jobToResponse(j queries.GetJobByIDQueryResponse) JobResponse {
	resp := JobResponse{
		ID:                  j.ID.String(),
		CustomerID:          j.CustomerID.String(),
		ServiceID:           j.ServiceID.String(),
		Status:              j.Status,
		Description:         j.Description,
		Location:            j.Location,
		EstimatedPriceCents: j.EstimatedPriceCents,
	}
	if j.TechnicianID != nil {
		id := j.TechnicianID.String()
		resp.TechnicianID = &id
	}
	return resp
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError translates application and domain errors into HTTP responses.
// Conflicting lifecycle operations map to 409 so clients can distinguish a
// lost race from a malformed request.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrOfferNotFound):
		status = http.StatusNotFound
	case errors.Is(err, offer.ErrOfferExpired),
		errors.Is(err, commands.ErrJobNotEligible),
		errors.Is(err, commands.ErrReviewAlreadyExists),
		errors.Is(err, job.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
