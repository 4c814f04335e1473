package jobs

import (
	"context"
	"log/slog"
	"time"

	"fixmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MatchingJob runs the dispatcher cycle on a fixed interval. Each cycle first
// promotes freshly requested jobs into matching, then runs the matching pass
// that expires stale offers and extends new ones.
//
// A cycle failure is logged and swallowed; the next cycle starts from the
// store's current state, so nothing is lost.
type MatchingJob struct {
	promoteHandler commands.PromoteRequestedJobsCommandHandler
	matchHandler   commands.MatchJobsCommandHandler
	interval       time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewMatchingJob creates the dispatcher job. The interval controls how often
// a cycle runs.
func NewMatchingJob(
	promoteHandler commands.PromoteRequestedJobsCommandHandler,
	matchHandler commands.MatchJobsCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *MatchingJob {
	return &MatchingJob{
		promoteHandler: promoteHandler,
		matchHandler:   matchHandler,
		interval:       interval,
		cron:           cron.New(),
		logger:         logger.With("component", "matching_job"),
	}
}

// Start begins the dispatcher cycle on the configured interval.
func (j *MatchingJob) Start() error {
	_, err := j.cron.AddFunc("@every "+j.interval.String(), j.runCycle)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Matching job started",
		"interval", j.interval.String())
	return nil
}

// Stop stops the dispatcher and waits for a running cycle to finish, so a
// shutdown never interrupts a cycle between its database transactions.
func (j *MatchingJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("Matching job stopped")
}

func (j *MatchingJob) runCycle() {
	ctx := context.Background()

	if err := j.promoteHandler.Handle(ctx, commands.NewPromoteRequestedJobsCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Promotion pass failed", "error", err)
		return
	}

	if err := j.matchHandler.Handle(ctx, commands.NewMatchJobsCommand()); err != nil {
		// The matching pass isolates per-job failures; whatever could be
		// committed already was.
		j.logger.ErrorContext(ctx, "Matching pass failed", "error", err)
	}
}
