package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fixmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	matchingJob *MatchingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	promoteHandler commands.PromoteRequestedJobsCommandHandler,
	matchHandler commands.MatchJobsCommandHandler,
	matchInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		matchingJob: NewMatchingJob(promoteHandler, matchHandler, matchInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.matchingJob.Start(); err != nil {
		return fmt.Errorf("failed to start matching job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, waiting for running cycles.
func (jm *JobManager) StopAll() {
	jm.matchingJob.Stop()
}
