package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/0r3ntal/RigMonitor/internal/service"
	"github.com/0r3ntal/RigMonitor/internal/websocket"
)

// RefreshScheduler periodically regenerates the dashboard snapshot and
// broadcasts it to connected websocket clients.
type RefreshScheduler struct {
	cron      *cron.Cron
	logger    *zap.Logger
	dashboard *service.DashboardService
	hub       *websocket.Manager
	seconds   int

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRefreshScheduler(logger *zap.Logger, dashboard *service.DashboardService, hub *websocket.Manager, seconds int) *RefreshScheduler {
	return &RefreshScheduler{
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger,
		dashboard: dashboard,
		hub:       hub,
		seconds:   seconds,
	}
}

// Start registers the refresh entry and starts the cron scheduler.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	spec := fmt.Sprintf("@every %ds", s.seconds)
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("register refresh entry: %w", err)
	}

	s.logger.Info("refresh scheduler started", zap.Int("intervalSeconds", s.seconds))
	s.cron.Start()
	return nil
}

// Stop cancels pending work and waits for the running entry to finish.
func (s *RefreshScheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("refresh scheduler stopped")
}

func (s *RefreshScheduler) tick() {
	if s.hub.Count() == 0 {
		s.logger.Debug("no dashboard clients connected, skipping refresh")
		return
	}

	frame, err := s.dashboard.Snapshot(s.ctx)
	if err != nil {
		s.logger.Error("build dashboard snapshot", zap.Error(err))
		return
	}
	s.hub.Broadcast(frame)
}
