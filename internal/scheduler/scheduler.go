package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lp-publisher/internal/config/configs"
	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

// ErrLocked is returned by Tick when another replica holds a job lock.
var ErrLocked = errors.New("job locked by another runner")

// Job is one unit of daily work. Jobs run in the order they are given and
// each succeeds at most once per calendar day.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler runs the daily jobs on an interval. A Redis backed
// port.Locker keeps replicas from running the same job for the same day.
type Scheduler struct {
	locker   port.Locker
	jobs     []Job
	cfg      configs.Scheduler
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a scheduler running jobs in the given order. Days are
// counted in location; a nil location means UTC.
func New(locker port.Locker, cfg configs.Scheduler, location *time.Location, logger *slog.Logger, jobs ...Job) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{
		locker:   locker,
		jobs:     jobs,
		cfg:      cfg,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Run ticks once right away and then every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.cfg.Interval), slog.Int("jobs", len(s.jobs)))
	s.tickAndLog(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tickAndLog(ctx)
		}
	}
}

func (s *Scheduler) tickAndLog(ctx context.Context) {
	err := s.Tick(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, ErrLocked), errors.Is(err, domain.ErrReportNotAvailable):
		s.logger.Info("scheduler tick deferred", slog.Any("error", err))
	default:
		s.logger.Error("scheduler tick failed", slog.Any("error", err))
	}
}

// Tick runs every job not yet done today. It stops at the first job that
// fails or is locked elsewhere, so later jobs never run ahead of the
// ones they depend on; the next tick retries. A job that returns an error
// is never marked done, which covers input that is not available yet.
func (s *Scheduler) Tick(ctx context.Context) error {
	day := domain.DayOf(s.now().In(s.location)).Format(domain.DateLayout)
	for _, job := range s.jobs {
		if err := s.runOnce(ctx, job, job.Name+":"+day); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context, job Job, key string) (err error) {
	logger := s.logger.With(slog.String("job", job.Name), slog.String("key", key))

	done, err := s.locker.IsDone(ctx, key)
	if err != nil {
		return fmt.Errorf("check %s: %w", key, err)
	}
	if done {
		return nil
	}

	ok, err := s.locker.Acquire(ctx, key, s.cfg.LockTTL)
	if err != nil {
		return fmt.Errorf("lock %s: %w", key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, key)
	}
	defer func() {
		// the lock is freed even when ctx is cancelled
		relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if relErr := s.locker.Release(relCtx, key); relErr != nil {
			logger.Warn("failed to release job lock", slog.Any("error", relErr))
		}
	}()

	start := s.now()
	if err = job.Run(ctx); err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	if err = s.locker.MarkDone(ctx, key, s.cfg.DoneTTL); err != nil {
		return fmt.Errorf("mark %s done: %w", key, err)
	}
	logger.Info("job finished", slog.Duration("took", s.now().Sub(start)))
	return nil
}
