// Package scheduler runs the daily reminder batch on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"rentora/config"
	"rentora/internal/delivery"
	"rentora/internal/domain/lifecycle"
	"rentora/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Reminder usecase.ReminderUsecase
}

// reminderScheduler triggers one reminder cycle per cron tick. Each run gets
// its own timeout so a hung provider cannot wedge the schedule.
type reminderScheduler struct {
	cfg      *config.ReminderConfig
	logger   *slog.Logger
	reminder usecase.ReminderUsecase
	cron     *cron.Cron

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewScheduler creates the cron delivery for the reminder batch.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	scheduler := &reminderScheduler{
		cfg:      params.Config.Reminder,
		logger:   params.Logger,
		reminder: params.Reminder,
		cron:     cron.New(),
	}

	if _, err := scheduler.cron.AddFunc(scheduler.cfg.CronSpec, scheduler.runOnce); err != nil {
		return nil, errors.Wrapf(err, "invalid reminder cron spec %q", scheduler.cfg.CronSpec)
	}

	params.Append(fx.Hook{
		OnStop: scheduler.stop,
	})

	return scheduler, nil
}

// Serve starts the cron loop and blocks until the context is cancelled.
func (s *reminderScheduler) Serve(ctx context.Context) error {
	s.baseCtx, s.cancel = context.WithCancel(ctx)
	s.logger.Info("Starting reminder scheduler", slog.String("cronSpec", s.cfg.CronSpec))

	s.cron.Start()
	<-s.baseCtx.Done()

	return nil
}

// runOnce executes one reminder cycle under the configured run timeout.
// Cancellation stops new organizations from being picked up; in-flight
// deliveries finish or fail on their own.
func (s *reminderScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(s.baseCtx, s.cfg.RunTimeout)
	defer cancel()

	started := time.Now()
	summary, err := s.reminder.RunReminderCycle(ctx, started)
	if err != nil {
		s.logger.Error("scheduled reminder cycle failed", slog.Any("error", err))

		return
	}

	s.logger.Info("scheduled reminder cycle done",
		slog.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)),
		slog.Int("reminders_sent", summary.RemindersSent))
}

func (s *reminderScheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down reminder scheduler")

	if s.cancel != nil {
		s.cancel()
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-time.After(lifecycle.DefaultTimeout):
		return errors.New("timed out waiting for running reminder jobs")
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
