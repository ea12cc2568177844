package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler re-runs the index pipeline on a cron schedule. Each run is
// independent; a failed run logs its error and waits for the next tick
// without touching the previous artifact.
type Scheduler struct {
	Cron *cron.Cron
	Job  func() error
}

// NewScheduler creates a scheduler around the given run function.
func NewScheduler(job func() error) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  job,
	}
}

// Register registers the run on the given 6-field cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, func() {
		log.Info().Msg("scheduled run starting")
		if err := s.Job(); err != nil {
			log.Error().Err(err).Msg("scheduled run failed")
			return
		}
		log.Info().Msg("scheduled run finished")
	}); err != nil {
		return fmt.Errorf("register cron task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}
