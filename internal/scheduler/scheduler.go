package scheduler

import (
	"context"

	"newsroom-backend/internal/database/models"
	"newsroom-backend/internal/logger"
	"newsroom-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic feed syncs for every frequency tier. Sources
// marked MANUAL are never picked up here.
type Scheduler struct {
	cron *cron.Cron
	sync service.SyncServiceInterface
	log  *logger.Logger
}

// New creates a scheduler wired to the sync service
func New(sync service.SyncServiceInterface) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		sync: sync,
		log:  logger.WithComponent("scheduler"),
	}
}

// Start registers the sync jobs and launches the cron loop
func (s *Scheduler) Start() error {
	jobs := []struct {
		spec string
		freq models.UpdateFrequency
	}{
		{"@hourly", models.FrequencyHourly},
		{"@daily", models.FrequencyDaily},
		{"@weekly", models.FrequencyWeekly},
	}

	for _, job := range jobs {
		freq := job.freq
		if _, err := s.cron.AddFunc(job.spec, func() { s.run(freq) }); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.log.Info("Scheduler started")
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

func (s *Scheduler) run(freq models.UpdateFrequency) {
	log := s.log.WithField("frequency", string(freq))
	log.Info("Starting scheduled feed sync")

	if err := s.sync.SyncDueSources(context.Background(), freq); err != nil {
		log.WithError(err).Error("Scheduled feed sync failed")
		return
	}

	log.Info("Scheduled feed sync finished")
}
