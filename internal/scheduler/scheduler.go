package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/config"
	"github.com/mamadbah2/agence/internal/service/register"
)

// RegisterSyncer synchronises the mandate register.
type RegisterSyncer interface {
	Sync(ctx context.Context) (register.SyncResult, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	register RegisterSyncer
	cfg      config.RegisterConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
func NewScheduler(cfg config.RegisterConfig, registerSvc RegisterSyncer, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	// Standard 5-field cron expressions (min, hour, dom, month, dow).
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:     c,
		register: registerSvc,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("register_schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.syncRegister); err != nil {
		return fmt.Errorf("schedule register sync: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) syncRegister() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.register.Sync(ctx)
	if err != nil {
		s.logger.Error("failed to synchronise mandate register", zap.Error(err))
		return
	}
	s.logger.Info("mandate register sync done", zap.Int("appended", result.Appended), zap.Int("skipped", result.Skipped))
}
