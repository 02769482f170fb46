// Package scheduler runs the periodic insight refresh.
package scheduler

import (
	"context"
	"fmt"

	"jobsync/internal/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultSpec = "@every 5m"
	// Disabled as a spec turns the scheduler off.
	Disabled = "off"
)

type InsightRefresher interface {
	RefreshPendingInsights(ctx context.Context, limit int) (int, error)
}

type Scheduler struct {
	cron      *cron.Cron
	refresher InsightRefresher
	spec      string
	batchSize int
	logger    *zap.Logger
}

func New(refresher InsightRefresher, spec string, batchSize int, log *zap.Logger) *Scheduler {
	log = logger.OrNop(log).Named("scheduler")
	if spec == "" {
		spec = DefaultSpec
	}
	cl := cronLogger{log.Sugar()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		refresher: refresher,
		spec:      spec,
		batchSize: batchSize,
		logger:    log,
	}
}

// Start registers the refresh job, starts the cron loop and runs one cycle
// in the background right away.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("cron started", zap.String("spec", s.spec))

	go s.RunOnce(ctx)

	return nil
}

// Stop waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("cron stopped")
}

func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := s.refresher.RefreshPendingInsights(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("insight refresh failed", zap.Int("stored", n), zap.Error(err))
		return
	}
	s.logger.Debug("insight refresh complete", zap.Int("stored", n))
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
