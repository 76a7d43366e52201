package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yourusername/odds-iq/internal/service"
)

// Scheduler manages the recurring polling and verification jobs
type Scheduler struct {
	cron            *cron.Cron
	ingestionSvc    *service.IngestionService
	predictionSvc   *service.PredictionService
	verificationSvc *service.VerificationService
	logger          *log.Logger
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(
	ingestionSvc *service.IngestionService,
	predictionSvc *service.PredictionService,
	verificationSvc *service.VerificationService,
	logger *log.Logger,
) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		ingestionSvc:    ingestionSvc,
		predictionSvc:   predictionSvc,
		verificationSvc: verificationSvc,
		logger:          logger,
		jobIDs:          make([]cron.EntryID, 0),
	}
}

// ScheduleOddsPolling schedules the recurring odds poll. Each poll ingests
// fresh quotes and recomputes predictions for matches that still lack one.
func (s *Scheduler) ScheduleOddsPolling(intervalSeconds int, sportKeys []string, predictionLimit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	if intervalSeconds < 5 {
		intervalSeconds = 5
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(intervalSeconds-1)*time.Second)
		defer cancel()

		if err := s.ingestionSvc.IngestAllSports(ctx, sportKeys); err != nil {
			s.logger.Printf("Error during odds polling: %v", err)
		}

		for _, key := range sportKeys {
			if _, err := s.predictionSvc.PredictUpcoming(ctx, key, predictionLimit); err != nil {
				s.logger.Printf("Error computing predictions for %s: %v", key, err)
			}
		}
	}

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.Printf("Scheduled odds polling with interval: %d seconds", intervalSeconds)

	return nil
}

// ScheduleScoresSync schedules the recurring results fetch that attaches
// final scores to tracked matches.
func (s *Scheduler) ScheduleScoresSync(cronExpression string, sportKeys []string, daysBack int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		for _, key := range sportKeys {
			if err := s.ingestionSvc.IngestScores(ctx, key, daysBack); err != nil {
				s.logger.Printf("Error during scores sync for %s: %v", key, err)
			}
		}
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.Printf("Scheduled scores sync with cron expression: %s", cronExpression)

	return nil
}

// ScheduleVerificationSweep schedules the sweep that settles pending
// predictions once results are in.
func (s *Scheduler) ScheduleVerificationSweep(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		result, err := s.verificationSvc.Sweep(ctx)
		if err != nil {
			s.logger.Printf("Error during verification sweep: %v", err)
			return
		}
		s.logger.Printf("Verification sweep finished: verified=%d skipped=%d", result.Verified, result.Skipped)
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.Printf("Scheduled verification sweep with cron expression: %s", cronExpression)

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Printf("Scheduler started with %d jobs", len(s.jobIDs))

	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Printf("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			nextTime := entry.Next
			if nextRun.IsZero() || nextTime.Before(nextRun) {
				nextRun = nextTime
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}
