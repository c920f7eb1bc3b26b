package jobs

import (
	"boardcamp-backend/internal/config"
	"boardcamp-backend/internal/dependencies/clock"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/repository"
	"boardcamp-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo repository.RentalRepository
	emailSvc   service.EmailService
	config     *config.Config
	clock      clock.Clock
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalRepo repository.RentalRepository, emailSvc service.EmailService, cfg *config.Config, clk clock.Clock) *JobRunner {
	return &JobRunner{
		rentalRepo: rentalRepo,
		emailSvc:   emailSvc,
		config:     cfg,
		clock:      clk,
	}
}

// Config returns the loaded application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
